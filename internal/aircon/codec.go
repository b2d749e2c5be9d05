package aircon

import (
	"strings"
)

// Request paths exposed by the adapter
const (
	PathBasicInfo      = "/common/basic_info"
	PathControlInfo    = "/aircon/get_control_info"
	PathSensorInfo     = "/aircon/get_sensor_info"
	PathSetControlInfo = "/aircon/set_control_info"
)

// Wire keys used by the controller
const (
	KeyReturn         = "ret"
	KeyPower          = "pow"
	KeyMode           = "mode"
	KeyTargetTemp     = "stemp"
	KeyTargetHumidity = "shum"
	KeyFanRate        = "f_rate"
	KeyFanDirLR       = "f_dir_lr"
	KeyFanDirUD       = "f_dir_ud"
	KeyCoolMemory     = "dt3"
	KeyHeatMemory     = "dt4"
	KeyInsideTemp     = "htemp"
	KeyInsideHumidity = "hhum"
)

// Device mode codes as they appear in the "mode" parameter
const (
	ModeAuto0    = "0"
	ModeAuto     = "1"
	ModeDry      = "2"
	ModeCool     = "3"
	ModeHeat     = "4"
	ModeFan      = "6"
	ModeHumidify = "HUM"
)

// Power codes
const (
	PowerOff = "0"
	PowerOn  = "1"
)

// RetOK is the "ret" value of an accepted write
const RetOK = "OK"

// Markers rendered for write-schema keys the caller did not supply
const (
	// MissingEmpty sends the key with an empty value
	MissingEmpty = ""

	// MissingUndefined reproduces the literal the legacy Homebridge plugin
	// sent for absent keys
	MissingUndefined = "undefined"
)

// WriteSchema lists the keys of a control write in wire order
var WriteSchema = []string{
	KeyPower,
	KeyFanDirUD,
	KeyMode,
	KeyTargetHumidity,
	KeyFanDirLR,
	KeyFanRate,
	KeyTargetTemp,
}

// ParseResponse converts an adapter response body into Params.
//
// The body is split on ',' and each token on its first '=' only, so values
// containing '=' survive intact. A token without '=' becomes a key with an
// empty value. Empty tokens (e.g. from a trailing comma) are skipped.
func ParseResponse(body string) *Params {
	params := NewParams()
	if body == "" {
		return params
	}

	for _, token := range strings.Split(body, ",") {
		if token == "" {
			continue
		}
		key, value, _ := strings.Cut(token, "=")
		params.Set(key, value)
	}

	return params
}

// BuildQuery renders the fixed write schema from params as a query string.
// Keys missing from params are rendered with the missing marker.
func BuildQuery(params *Params, missing string) string {
	return ControlSettingsFrom(params).Query(missing)
}

// SetControlPath returns the write path for a query built by BuildQuery
func SetControlPath(query string) string {
	return PathSetControlInfo + "?" + query
}
