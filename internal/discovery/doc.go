// Package discovery locates Daikin wireless adapters on the local network.
//
// Adapters advertise an "_http._tcp" service under a hostname of the form
// DaikinAP<digits>.local. Scanning browses for that service type, keeps the
// entries whose hostname matches, and collects them until the timeout.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(ctx, 5*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, device := range devices {
//	    client := transport.NewClient(device.BaseURL())
//	    if err := device.Identify(ctx, client); err == nil {
//	        fmt.Printf("%s: %s (%s)\n", device.IP, device.Name, device.Firmware)
//	    }
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Devices must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
