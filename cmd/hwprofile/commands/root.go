// Package commands implements the CLI commands for hwprofile.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/cmd"
	"github.com/thoreinstein/hwprofile/internal/config"
	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/host"
	"github.com/thoreinstein/hwprofile/internal/logging"
	"github.com/thoreinstein/hwprofile/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// profileRef holds the value of the --profile flag.
var profileRef string

// hardwareFlag holds the value of the --hardware flag.
var hardwareFlag string

// cfg is the configuration loaded before any subcommand runs.
var cfg = config.Default()

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/hwprofile/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileRef, "profile", "",
		"host profile name or path (.yaml, .toml) to simulate a device")
	rootCmd.PersistentFlags().StringVar(&hardwareFlag, "hardware", "",
		"hardware identifier to use instead of querying the host (e.g., iPhone6,1)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("hwprofile version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "hwprofile",
	Short: "Identify the current device and its hardware capabilities",
	Long: `hwprofile identifies the device it runs on from its hardware identifier
string, classifies it as a phone, pod, pad or simulator, and reports the
capabilities the host offers: battery, accelerometer, gyroscope, phone
service, display and media picker.

Use --profile to load a host profile describing a simulated device.`,
	Example: `  # Identify the current device
  hwprofile identify

  # Identify a simulated device from a profile
  hwprofile identify --profile iphone

  # Parse a raw hardware identifier
  hwprofile parse iPad2,5

  # Export the device profile as CBOR
  hwprofile export --format cbor --out device.cbor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("HWPROFILE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{
		logging.NewFormatHandler(cmd.ErrOrStderr(), logging.Format(logFormat), opts),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads and validates the configuration into cfg.
func loadConfig() error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if errs := config.Validate(loaded); len(errs) > 0 {
		for _, e := range errs[1:] {
			slog.Warn("config validation", "error", e)
		}
		return errors.NewConfigError(errs[0])
	}
	cfg = loaded
	return nil
}

// hardwareOverride returns the identifier forced by --hardware or the
// config file, flag first.
func hardwareOverride() string {
	if hardwareFlag != "" {
		return hardwareFlag
	}
	return cfg.HardwareOverride
}

// buildHost returns the Static host named by --profile (or the configured
// profile), falling back to the running system.
func buildHost(logger *slog.Logger) (device.Host, error) {
	ref := profileRef
	if ref == "" {
		ref = cfg.Profile
	}
	if ref == "" {
		return host.NewSystem(), nil
	}

	path, err := paths.ResolveProfile(ref)
	if err != nil {
		return nil, errors.NewUserError(err, "Pass a profile path or place it in "+paths.ProfileDir())
	}
	s, err := host.LoadStatic(path, host.WithStaticLogger(logger))
	if err != nil {
		return nil, errors.NewConfigError(err)
	}
	logger.Debug("loaded host profile", "path", path)
	return s, nil
}

// newCache builds the device cache for a command invocation.
func newCache(cmd *cobra.Command, override string) (*device.Cache, error) {
	logger := logging.FromContext(cmd.Context())
	h, err := buildHost(logger)
	if err != nil {
		return nil, err
	}
	return device.NewCache(h,
		device.WithLogger(logger),
		device.WithHardwareOverride(override),
	), nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
