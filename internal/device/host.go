package device

import "github.com/thoreinstein/hwprofile/internal/capability"

// Host is the platform query boundary. The device package never performs
// system calls itself; a Host implementation supplies the raw hardware
// identifier, the gyroscope flag and the collaborators behind each
// capability.
//
// Accessors for collaborators return nil (or false) when the host has none.
type Host interface {
	// HardwareIdentifier returns the raw platform hardware string, such as
	// "iPhone8,1" or "x86_64".
	HardwareIdentifier() (string, error)

	// GyroscopeSupported reports whether gyroscope hardware is present.
	GyroscopeSupported() bool

	// FirmwareVersion returns the operating system version.
	FirmwareVersion() string

	// DeviceID returns a stable unique identifier. Hosts that cannot supply
	// one return an error matching errors.ErrUnsupported.
	DeviceID() (string, error)

	BatterySource() capability.BatterySource
	AccelerometerReader() capability.SensorReader
	GyroscopeReader() capability.SensorReader
	Dialer() capability.PhoneService
	Display() (capability.Display, bool)
	MediaPicker() capability.MediaPicker
}
