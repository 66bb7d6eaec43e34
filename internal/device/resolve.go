package device

import (
	"log/slog"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/hardware"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

// Option configures resolution and caching.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	override string
}

// WithLogger sets the logger for resolution and sensor diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHardwareOverride makes a Cache parse raw instead of asking the host.
// An empty string leaves the host in charge.
func WithHardwareOverride(raw string) Option {
	return func(o *options) {
		o.override = raw
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.NewDiscard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve builds the device variant for id using the collaborators host
// supplies. Capability objects are constructed idle; no sensor is started.
func Resolve(id hardware.Identifier, host Host, opts ...Option) *Device {
	o := newOptions(opts)

	kind := kindFor(id.Family)
	d := &Device{
		kind:     kind,
		hardware: id.String(),
		name:     defaultNames[kind],
	}
	if kind != KindSimulator {
		d.major, d.minor = id.Major, id.Minor
	}
	if m, ok := hardware.Lookup(id); ok {
		d.name = m.Name
	}

	var (
		batterySrc capability.BatterySource
		accReader  capability.SensorReader
	)
	d.id, d.idErr = readID(host)
	if host != nil {
		d.firmware = host.FirmwareVersion()
		batterySrc = host.BatterySource()
		accReader = host.AccelerometerReader()
	}

	sensorOpts := []capability.SensorOption{capability.WithLogger(o.logger)}
	d.battery = capability.Present(capability.NewBattery(batterySrc))
	d.accelerometer = capability.Present(capability.NewAccelerometer(accReader, sensorOpts...))

	if host == nil {
		o.logger.Debug("resolved device without host", "kind", kind.String())
		return d
	}

	if host.GyroscopeSupported() {
		d.gyroscope = capability.Present(capability.NewGyroscope(host.GyroscopeReader(), sensorOpts...))
	}
	if dialer := host.Dialer(); dialer != nil && (kind == KindPhone || kind == KindSimulator) {
		d.phone = capability.Present(dialer)
	}
	if disp, ok := host.Display(); ok {
		d.display = capability.Present(disp)
	}
	if picker := host.MediaPicker(); picker != nil {
		d.mediaPicker = capability.Present(picker)
	}

	o.logger.Debug("resolved device",
		"kind", kind.String(),
		"hardware", d.hardware,
		"name", d.name,
		"capabilities", d.Capabilities())
	return d
}
