package config

import (
	"io/fs"
	"strings"

	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidInterval indicates a non-positive sensor interval.
	ErrInvalidInterval = errors.New("sensor_interval must be positive")

	// ErrUnknownHardware indicates a hardware override no family pattern accepts.
	ErrUnknownHardware = errors.New("hardware override matches no device family")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.SensorInterval <= 0 {
		errs = append(errs, ErrInvalidInterval)
	}

	if cfg.HardwareOverride != "" && !hardware.Parse(cfg.HardwareOverride).Valid() {
		errs = append(errs, &FieldError{
			Field: "hardware_override",
			Value: cfg.HardwareOverride,
			Err:   ErrUnknownHardware,
		})
	}

	if strings.ContainsRune(cfg.Profile, '\x00') {
		errs = append(errs, &FieldError{
			Field: "profile",
			Value: cfg.Profile,
			Err:   errors.ErrInvalidConfig,
		})
	}

	return errs
}

// FieldError represents an error for a specific configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
