package device

import (
	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
)

// Manufacturer is reported by every device variant.
const Manufacturer = "Apple"

// Kind is the closed set of device variants.
type Kind int

const (
	KindSimulator Kind = iota
	KindPhone
	KindPod
	KindPad
)

func (k Kind) String() string {
	switch k {
	case KindPhone:
		return "phone"
	case KindPod:
		return "pod"
	case KindPad:
		return "pad"
	default:
		return "simulator"
	}
}

// kindFor maps an identifier family to its variant. Unknown hardware
// degrades to the simulator.
func kindFor(f hardware.Family) Kind {
	switch f {
	case hardware.FamilyPhone:
		return KindPhone
	case hardware.FamilyPod:
		return KindPod
	case hardware.FamilyPad:
		return KindPad
	default:
		return KindSimulator
	}
}

// defaultNames are used when the identifier is not in the hardware catalog.
var defaultNames = map[Kind]string{
	KindPhone:     "iPhone",
	KindPod:       "iPod touch",
	KindPad:       "iPad",
	KindSimulator: "Simulator",
}

// Device is a resolved device variant. It is immutable.
type Device struct {
	kind     Kind
	major    int
	minor    int
	name     string
	firmware string
	hardware string
	id       string
	idErr    error

	battery       capability.Handle[*capability.Battery]
	accelerometer capability.Handle[*capability.Accelerometer]
	gyroscope     capability.Handle[*capability.Gyroscope]
	phone         capability.Handle[capability.PhoneService]
	display       capability.Handle[capability.Display]
	mediaPicker   capability.Handle[capability.MediaPicker]
}

// Kind returns the device variant.
func (d *Device) Kind() Kind { return d.kind }

// Model returns the hardware generation numbers. ok is false for the
// simulator, which has none.
func (d *Device) Model() (major, minor int, ok bool) {
	if d.kind == KindSimulator {
		return 0, 0, false
	}
	return d.major, d.minor, true
}

// Name returns the marketing name, e.g. "iPhone 5s".
func (d *Device) Name() string { return d.name }

// Manufacturer returns the vendor name.
func (d *Device) Manufacturer() string { return Manufacturer }

// FirmwareVersion returns the OS version read when the device was resolved.
func (d *Device) FirmwareVersion() string { return d.firmware }

// HardwareVersion returns the hardware identifier, canonicalized when it
// matched a family.
func (d *Device) HardwareVersion() string { return d.hardware }

// ID returns the host's unique device identifier, read once at
// resolution. It fails with an error matching errors.ErrUnsupported when
// the host cannot supply one.
func (d *Device) ID() (string, error) {
	return d.id, d.idErr
}

// readID queries host for the device identifier.
func readID(host Host) (string, error) {
	const op = "device.id"
	if host == nil {
		return "", errors.Unsupported(op)
	}
	id, err := host.DeviceID()
	switch {
	case errors.Is(err, errors.ErrUnsupported):
		return "", errors.Unsupported(op)
	case err != nil:
		return "", errors.Op(op, err)
	case id == "":
		return "", errors.Unsupported(op)
	}
	return id, nil
}

func (d *Device) Battery() capability.Handle[*capability.Battery] { return d.battery }

func (d *Device) Accelerometer() capability.Handle[*capability.Accelerometer] {
	return d.accelerometer
}

// Gyroscope is absent when the host has no gyroscope hardware.
func (d *Device) Gyroscope() capability.Handle[*capability.Gyroscope] { return d.gyroscope }

func (d *Device) PhoneService() capability.Handle[capability.PhoneService] { return d.phone }

func (d *Device) Display() capability.Handle[capability.Display] { return d.display }

func (d *Device) MediaPicker() capability.Handle[capability.MediaPicker] { return d.mediaPicker }

// Capability names in reporting order.
const (
	CapBattery       = "battery"
	CapAccelerometer = "accelerometer"
	CapGyroscope     = "gyroscope"
	CapPhone         = "phone"
	CapDisplay       = "display"
	CapMediaPicker   = "media_picker"
)

// AllCapabilities returns every capability name a device may report.
func AllCapabilities() []string {
	return []string{CapBattery, CapAccelerometer, CapGyroscope, CapPhone, CapDisplay, CapMediaPicker}
}

// Capabilities lists the names of the present capabilities in a fixed order.
func (d *Device) Capabilities() []string {
	present := map[string]bool{
		CapBattery:       d.battery.IsPresent(),
		CapAccelerometer: d.accelerometer.IsPresent(),
		CapGyroscope:     d.gyroscope.IsPresent(),
		CapPhone:         d.phone.IsPresent(),
		CapDisplay:       d.display.IsPresent(),
		CapMediaPicker:   d.mediaPicker.IsPresent(),
	}
	var names []string
	for _, name := range AllCapabilities() {
		if present[name] {
			names = append(names, name)
		}
	}
	return names
}
