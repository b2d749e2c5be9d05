package climate

import "errors"

// DeviceRejectedError is returned when a control write comes back with a
// "ret" other than OK. Status holds the device's literal return code.
type DeviceRejectedError struct {
	Status string
	Path   string
}

// Error returns the device's status string
func (e *DeviceRejectedError) Error() string {
	if e.Status == "" {
		return "device rejected write (no ret value)"
	}
	return e.Status
}

// IsDeviceRejected reports whether err is a rejected write
func IsDeviceRejected(err error) bool {
	var rejected *DeviceRejectedError
	return errors.As(err, &rejected)
}

// RejectedStatus returns the device status carried by err, if any
func RejectedStatus(err error) (string, bool) {
	var rejected *DeviceRejectedError
	if errors.As(err, &rejected) {
		return rejected.Status, true
	}
	return "", false
}
