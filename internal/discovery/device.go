package discovery

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/muurk/daikinbridge/internal/aircon"
)

// Device represents a discovered Daikin adapter on the network
type Device struct {
	// ID is the numeric suffix of the adapter hostname (e.g., "12345")
	ID string

	// Hostname is the mDNS hostname (e.g., "DaikinAP12345.local.")
	Hostname string

	// IP is the IPv4 address (e.g., "192.168.1.20")
	IP string

	// Port is the HTTP port (typically 80)
	Port int

	// Name is the room name stored on the adapter (populated by Identify)
	Name string

	// MAC is the adapter MAC address (populated by Identify)
	MAC string

	// Firmware is the adapter firmware version (populated by Identify)
	Firmware string

	// Metadata contains additional mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	return fmt.Sprintf("Daikin Adapter %s (%s) at %s", d.ID, d.Hostname, net.JoinHostPort(d.IP, strconv.Itoa(d.Port)))
}

// BaseURL returns the HTTP base URL for the device
func (d *Device) BaseURL() string {
	return "http://" + net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}

// Getter fetches a path from an adapter
type Getter interface {
	Get(ctx context.Context, path string) (string, error)
}

// Identify fills Name, MAC and Firmware from the adapter's basic info
func (d *Device) Identify(ctx context.Context, g Getter) error {
	body, err := g.Get(ctx, aircon.PathBasicInfo)
	if err != nil {
		return err
	}

	info := aircon.ParseResponse(body)
	if ret := info.Get(aircon.KeyReturn); ret != aircon.RetOK {
		return fmt.Errorf("basic info returned ret=%q", ret)
	}

	d.Name = DecodeName(info.Get("name"))
	d.MAC = info.Get("mac")
	d.Firmware = info.Get("ver")
	return nil
}

// DecodeName decodes the percent-encoded room name the adapter reports
// (e.g., "%4c%69%76%69%6e%67" is "Living"). Undecodable input is returned as-is.
func DecodeName(raw string) string {
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
