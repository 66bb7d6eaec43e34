// Package config provides configuration management for hwprofile.
//
// The configuration file lives at ~/.config/hwprofile/config.yaml by default
// and uses YAML:
//
//	version: 1
//	profile: iphone-5s          # host profile name or path (optional)
//	hardware_override: iPad2,1  # replaces the identifier the host reports
//	sensor_interval: 100ms
//
// Every key may also be set from the environment with the HWPROFILE_
// prefix, e.g. HWPROFILE_HARDWARE_OVERRIDE.
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    // report
//	}
package config
