package device

import (
	"context"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/errors"
)

// Profile is a serializable snapshot of a Device.
type Profile struct {
	Kind            string                    `json:"kind" yaml:"kind" toml:"kind" cbor:"kind"`
	Name            string                    `json:"name" yaml:"name" toml:"name" cbor:"name"`
	Manufacturer    string                    `json:"manufacturer" yaml:"manufacturer" toml:"manufacturer" cbor:"manufacturer"`
	HardwareVersion string                    `json:"hardware_version" yaml:"hardware_version" toml:"hardware_version" cbor:"hardware_version"`
	FirmwareVersion string                    `json:"firmware_version" yaml:"firmware_version" toml:"firmware_version" cbor:"firmware_version"`
	Major           *int                      `json:"major,omitempty" yaml:"major,omitempty" toml:"major,omitempty" cbor:"major,omitempty"`
	Minor           *int                      `json:"minor,omitempty" yaml:"minor,omitempty" toml:"minor,omitempty" cbor:"minor,omitempty"`
	ID              string                    `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" cbor:"id,omitempty"`
	Capabilities    []string                  `json:"capabilities" yaml:"capabilities" toml:"capabilities" cbor:"capabilities"`
	Battery         *capability.BatteryStatus `json:"battery,omitempty" yaml:"battery,omitempty" toml:"battery,omitempty" cbor:"battery,omitempty"`
	Display         *capability.Display       `json:"display,omitempty" yaml:"display,omitempty" toml:"display,omitempty" cbor:"display,omitempty"`
}

// Snapshot captures d's properties and current battery state. Values the
// host does not support (ID, battery) are left empty; any other host
// failure is returned.
func Snapshot(ctx context.Context, d *Device) (Profile, error) {
	p := Profile{
		Kind:            d.Kind().String(),
		Name:            d.Name(),
		Manufacturer:    d.Manufacturer(),
		HardwareVersion: d.HardwareVersion(),
		FirmwareVersion: d.FirmwareVersion(),
		Capabilities:    d.Capabilities(),
	}
	if major, minor, ok := d.Model(); ok {
		p.Major, p.Minor = &major, &minor
	}

	id, err := d.ID()
	switch {
	case err == nil:
		p.ID = id
	case !errors.Is(err, errors.ErrUnsupported):
		return Profile{}, err
	}

	if b, ok := d.Battery().Get(); ok {
		st, err := b.Status(ctx)
		switch {
		case err == nil:
			p.Battery = &st
		case !errors.Is(err, errors.ErrUnsupported):
			return Profile{}, err
		}
	}
	if disp, ok := d.Display().Get(); ok {
		p.Display = &disp
	}
	return p, nil
}
