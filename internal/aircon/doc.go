// Package aircon implements the wire codec for the Daikin adapter's
// plain-text HTTP control protocol.
//
// The adapter answers every request with a body of comma-separated
// key=value tokens and no escaping:
//
//	ret=OK,pow=1,mode=3,stemp=26.0,shum=0,f_rate=A,f_dir=3
//
// Control writes are plain GET requests whose query carries the complete
// parameter set. The device does not accept partial updates, so a write
// always re-sends every key of the fixed write schema:
//
//	/aircon/set_control_info?pow=1&f_dir_ud=0&mode=3&shum=0&f_dir_lr=0&f_rate=A&stemp=26
//
// # Usage Example
//
//	params := aircon.ParseResponse(body)
//	params.Set("pow", "1")
//	query := aircon.BuildQuery(params, aircon.MissingEmpty)
//	path := aircon.SetControlPath(query)
//
// Everything in this package is pure. Nothing performs I/O or holds state
// between calls.
package aircon
