package capability

import (
	"context"
	"fmt"

	"github.com/thoreinstein/hwprofile/internal/errors"
)

// BatterySource reports raw battery state from the host.
type BatterySource interface {
	// Level returns the charge level as a percentage in [0, 100].
	Level(ctx context.Context) (int, error)

	// Charging reports whether external power is charging the battery.
	Charging(ctx context.Context) (bool, error)
}

// BatteryStatus is a point-in-time battery snapshot.
type BatteryStatus struct {
	Level    int  `json:"level" yaml:"level" toml:"level" cbor:"level"`
	Charging bool `json:"charging" yaml:"charging" toml:"charging" cbor:"charging"`
}

// Battery exposes charge level and charging state.
type Battery struct {
	src BatterySource
}

// NewBattery returns a Battery reading from src. A nil src yields a Battery
// whose queries report ErrUnsupported.
func NewBattery(src BatterySource) *Battery {
	return &Battery{src: src}
}

// Level returns the charge level percentage.
func (b *Battery) Level(ctx context.Context) (int, error) {
	const op = "battery.level"
	if b.src == nil {
		return 0, errors.Unsupported(op)
	}
	level, err := b.src.Level(ctx)
	if err != nil {
		return 0, errors.Op(op, err)
	}
	if level < 0 || level > 100 {
		return 0, errors.Op(op, fmt.Errorf("level %d out of range", level))
	}
	return level, nil
}

// Charging reports whether the battery is charging.
func (b *Battery) Charging(ctx context.Context) (bool, error) {
	const op = "battery.charging"
	if b.src == nil {
		return false, errors.Unsupported(op)
	}
	charging, err := b.src.Charging(ctx)
	if err != nil {
		return false, errors.Op(op, err)
	}
	return charging, nil
}

// Status returns level and charging state together.
func (b *Battery) Status(ctx context.Context) (BatteryStatus, error) {
	level, err := b.Level(ctx)
	if err != nil {
		return BatteryStatus{}, err
	}
	charging, err := b.Charging(ctx)
	if err != nil {
		return BatteryStatus{}, err
	}
	return BatteryStatus{Level: level, Charging: charging}, nil
}
