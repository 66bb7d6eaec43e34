package host

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/hwprofile/internal/capability"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/logging"
	"github.com/thoreinstein/hwprofile/pkg/fileutil"
)

// Spec is the on-disk description of a static host.
type Spec struct {
	Hardware      string              `yaml:"hardware" toml:"hardware"`
	Firmware      string              `yaml:"firmware" toml:"firmware"`
	Gyroscope     bool                `yaml:"gyroscope" toml:"gyroscope"`
	DeviceID      string              `yaml:"device_id" toml:"device_id"`
	Phone         bool                `yaml:"phone" toml:"phone"`
	Battery       *BatterySpec        `yaml:"battery" toml:"battery"`
	Accelerometer *AxisSpec           `yaml:"accelerometer" toml:"accelerometer"`
	Rotation      *AxisSpec           `yaml:"rotation" toml:"rotation"`
	Display       *capability.Display `yaml:"display" toml:"display"`
}

// BatterySpec is a fixed battery state.
type BatterySpec struct {
	Level    int  `yaml:"level" toml:"level"`
	Charging bool `yaml:"charging" toml:"charging"`
}

// AxisSpec is a fixed three-axis sensor value.
type AxisSpec struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	Z float64 `yaml:"z" toml:"z"`
}

// Validate checks the spec for values a device could not report.
func (s Spec) Validate() error {
	if s.DeviceID != "" {
		if _, err := uuid.Parse(s.DeviceID); err != nil {
			return errors.Wrapf(errors.ErrInvalidProfile, "device_id %q: %v", s.DeviceID, err)
		}
	}
	if s.Battery != nil && (s.Battery.Level < 0 || s.Battery.Level > 100) {
		return errors.Wrapf(errors.ErrInvalidProfile, "battery level %d out of range", s.Battery.Level)
	}
	if s.Display != nil && (s.Display.Width <= 0 || s.Display.Height <= 0) {
		return errors.Wrap(errors.ErrInvalidProfile, "display dimensions must be positive")
	}
	return nil
}

// StaticOption configures a Static host.
type StaticOption func(*Static)

// WithStaticLogger sets the logger used by the dialer.
func WithStaticLogger(l *slog.Logger) StaticOption {
	return func(s *Static) {
		if l != nil {
			s.logger = l
		}
	}
}

// Static is a host whose answers come from a Spec.
type Static struct {
	spec   Spec
	logger *slog.Logger
	dialer *RecordingDialer
}

// NewStatic validates spec and returns a host answering from it.
func NewStatic(spec Spec, opts ...StaticOption) (*Static, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	s := &Static{spec: spec, logger: logging.NewDiscard()}
	for _, opt := range opts {
		opt(s)
	}
	if spec.Phone {
		s.dialer = &RecordingDialer{logger: s.logger}
	}
	return s, nil
}

// LoadStatic reads a host profile from path. The format follows the file
// extension; unknown keys are rejected.
func LoadStatic(path string, opts ...StaticOption) (*Static, error) {
	data, err := fileutil.ReadFileLimited(path, fileutil.MaxProfileSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "host profile %s", path)
		}
		return nil, errors.Wrap(err, "reading host profile")
	}

	spec, err := DecodeSpec(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "host profile %s", path)
	}
	return NewStatic(spec, opts...)
}

// DecodeSpec parses data as YAML or TOML according to ext.
func DecodeSpec(data []byte, ext string) (Spec, error) {
	var spec Spec
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil {
			return Spec{}, errors.Wrapf(errors.ErrInvalidProfile, "yaml: %v", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return Spec{}, errors.Wrapf(errors.ErrInvalidProfile, "toml: %v", err)
		}
	default:
		return Spec{}, errors.Wrapf(errors.ErrInvalidProfile, "unsupported profile extension %q", ext)
	}
	return spec, nil
}

// Spec returns the spec the host answers from.
func (s *Static) Spec() Spec {
	return s.spec
}

func (s *Static) HardwareIdentifier() (string, error) {
	return s.spec.Hardware, nil
}

func (s *Static) GyroscopeSupported() bool {
	return s.spec.Gyroscope
}

func (s *Static) FirmwareVersion() string {
	return s.spec.Firmware
}

func (s *Static) DeviceID() (string, error) {
	if s.spec.DeviceID == "" {
		return "", errors.Unsupported("host.device_id")
	}
	return s.spec.DeviceID, nil
}

func (s *Static) BatterySource() capability.BatterySource {
	if s.spec.Battery == nil {
		return nil
	}
	return staticBattery{spec: *s.spec.Battery}
}

func (s *Static) AccelerometerReader() capability.SensorReader {
	return axisReader(s.spec.Accelerometer)
}

func (s *Static) GyroscopeReader() capability.SensorReader {
	return axisReader(s.spec.Rotation)
}

// Dialer returns the recording dialer when the profile enables the phone.
func (s *Static) Dialer() capability.PhoneService {
	if s.dialer == nil {
		return nil
	}
	return s.dialer
}

// Dialed returns the numbers dialed so far.
func (s *Static) Dialed() []string {
	if s.dialer == nil {
		return nil
	}
	return s.dialer.Dialed()
}

func (s *Static) Display() (capability.Display, bool) {
	if s.spec.Display == nil {
		return capability.Display{}, false
	}
	return *s.spec.Display, true
}

func (s *Static) MediaPicker() capability.MediaPicker {
	return nil
}

type staticBattery struct {
	spec BatterySpec
}

func (b staticBattery) Level(context.Context) (int, error)     { return b.spec.Level, nil }
func (b staticBattery) Charging(context.Context) (bool, error) { return b.spec.Charging, nil }

func axisReader(a *AxisSpec) capability.SensorReader {
	if a == nil {
		return nil
	}
	v := *a
	return capability.SensorReaderFunc(func(ctx context.Context) (capability.Reading, error) {
		if err := ctx.Err(); err != nil {
			return capability.Reading{}, err
		}
		return capability.Reading{X: v.X, Y: v.Y, Z: v.Z, At: time.Now()}, nil
	})
}

// RecordingDialer logs and records dialed numbers instead of placing calls.
type RecordingDialer struct {
	logger *slog.Logger

	mu     sync.Mutex
	dialed []string
}

// DialNumber records number.
func (d *RecordingDialer) DialNumber(number string) error {
	d.mu.Lock()
	d.dialed = append(d.dialed, number)
	d.mu.Unlock()

	d.logger.Info("dial", "number", number)
	return nil
}

// Dialed returns a copy of the recorded numbers.
func (d *RecordingDialer) Dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dialed...)
}
