package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/hwprofile/internal/config"
	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
	"github.com/thoreinstein/hwprofile/internal/host"
	"github.com/thoreinstein/hwprofile/internal/paths"
)

var (
	_ Check = (*ConfigCheck)(nil)
	_ Check = (*ProfileCheck)(nil)
	_ Check = (*HostCheck)(nil)
	_ Check = (*CapabilityCheck)(nil)
)

// ConfigCheck loads and validates the configuration file.
type ConfigCheck struct {
	// Path is the explicit config file, or "" for the default locations.
	Path string
}

func (c *ConfigCheck) Name() string     { return "config" }
func (c *ConfigCheck) Category() string { return "config" }

func (c *ConfigCheck) Run(context.Context) *CheckResult {
	cfg, err := config.Load(c.Path)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Check the file passed to --config",
		}
	}

	errs := config.Validate(cfg)
	if len(errs) == 0 {
		return &CheckResult{
			Status:  SeverityPass,
			Message: "configuration is valid",
			Details: map[string]any{"sensor_interval": cfg.SensorInterval.String()},
		}
	}

	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, e.Error())
	}
	return &CheckResult{
		Status:  SeverityError,
		Message: fmt.Sprintf("%d configuration problem(s)", len(errs)),
		Details: map[string]any{"problems": problems},
		FixHint: "Edit " + paths.ConfigFile(),
	}
}

// ProfileCheck resolves and decodes a host profile reference.
type ProfileCheck struct {
	Ref string
}

func (c *ProfileCheck) Name() string     { return "profile" }
func (c *ProfileCheck) Category() string { return "host" }

func (c *ProfileCheck) Run(context.Context) *CheckResult {
	if c.Ref == "" {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no host profile selected, using the running system",
		}
	}

	path, err := paths.ResolveProfile(c.Ref)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Place profiles in " + paths.ProfileDir(),
		}
	}

	s, err := host.LoadStatic(path)
	if err != nil {
		hint := "Check the profile's keys and values"
		if errors.Is(err, errors.ErrNotFound) {
			hint = "Check the profile path"
		}
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			Details: map[string]any{"path": path},
			FixHint: hint,
		}
	}

	return &CheckResult{
		Status:  SeverityPass,
		Message: "profile " + path + " is valid",
		Details: map[string]any{"path": path, "hardware": s.Spec().Hardware},
	}
}

// HostCheck verifies that the host reports a recognized hardware identifier.
type HostCheck struct {
	Host device.Host

	// Override, when set, replaces the host's answer as it does in a Cache.
	Override string
}

func (c *HostCheck) Name() string     { return "hardware-identifier" }
func (c *HostCheck) Category() string { return "host" }

func (c *HostCheck) Run(context.Context) *CheckResult {
	raw := c.Override
	if raw == "" {
		if c.Host == nil {
			return &CheckResult{
				Status:  SeverityWarning,
				Message: "no host; the device will resolve as a simulator",
			}
		}
		var err error
		raw, err = c.Host.HardwareIdentifier()
		if err != nil {
			return &CheckResult{
				Status:  SeverityWarning,
				Message: "host cannot report a hardware identifier: " + err.Error(),
				FixHint: "Use --profile or --hardware to describe the device",
			}
		}
	}

	id := hardware.Parse(raw)
	details := map[string]any{"raw": raw, "family": id.Family.String()}
	if !id.Valid() {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: fmt.Sprintf("%q is not a known family; the device resolves as a simulator", raw),
			Details: details,
		}
	}

	details["major"], details["minor"] = id.Major, id.Minor
	if _, ok := hardware.Lookup(id); !ok {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: id.String() + " parses but has no catalog name",
			Details: details,
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: id.String() + " is recognized",
		Details: details,
	}
}

// CapabilityCheck resolves the current device and probes its battery.
type CapabilityCheck struct {
	Cache *device.Cache
}

func (c *CapabilityCheck) Name() string     { return "capabilities" }
func (c *CapabilityCheck) Category() string { return "device" }

func (c *CapabilityCheck) Run(ctx context.Context) *CheckResult {
	d := c.Cache.Current()
	details := map[string]any{
		"kind":         d.Kind().String(),
		"capabilities": d.Capabilities(),
	}

	b, ok := d.Battery().Get()
	if !ok {
		return &CheckResult{Status: SeverityWarning, Message: "device has no battery", Details: details}
	}
	if _, err := b.Status(ctx); err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			return &CheckResult{
				Status:  SeverityInfo,
				Message: d.Kind().String() + " resolved; host does not report battery state",
				Details: details,
			}
		}
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "battery state unreadable: " + err.Error(),
			Details: details,
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: d.Kind().String() + " resolved with battery state",
		Details: details,
	}
}
