package host

import (
	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/errors"
)

// System is the host for the machine the process runs on.
type System struct{}

// NewSystem returns the operating system host.
func NewSystem() *System {
	return &System{}
}

// HardwareIdentifier returns the OS machine string (hw.machine on Darwin,
// the uname machine field elsewhere).
func (s *System) HardwareIdentifier() (string, error) {
	raw, err := machine()
	if err != nil {
		return "", errors.Op("host.hardware_identifier", err)
	}
	return raw, nil
}

// FirmwareVersion returns the OS release, or "" if it cannot be read.
func (s *System) FirmwareVersion() string {
	v, err := osRelease()
	if err != nil {
		return ""
	}
	return v
}

func (s *System) GyroscopeSupported() bool { return false }

func (s *System) DeviceID() (string, error) {
	return "", errors.Unsupported("host.device_id")
}

func (s *System) BatterySource() capability.BatterySource      { return nil }
func (s *System) AccelerometerReader() capability.SensorReader { return nil }
func (s *System) GyroscopeReader() capability.SensorReader     { return nil }
func (s *System) Dialer() capability.PhoneService              { return nil }
func (s *System) Display() (capability.Display, bool)          { return capability.Display{}, false }
func (s *System) MediaPicker() capability.MediaPicker          { return nil }
