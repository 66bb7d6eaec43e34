package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/doctor"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/export"
	"github.com/thoreinstein/hwprofile/internal/host"
	"github.com/thoreinstein/hwprofile/internal/logging"
)

var (
	doctorJSON    bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "all", false,
		"show passed and informational checks too")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "all")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and host issues",
	Long: `Run diagnostic checks on the hwprofile configuration, the selected host
profile and the host's hardware reporting.

Unlike other commands, doctor does not stop at an invalid configuration;
it reports it.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	// Replaces the root hook so a broken config is diagnosed, not fatal.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		checks := []doctor.Check{
			&doctor.ConfigCheck{Path: configPath},
			&doctor.ProfileCheck{Ref: profileRef},
		}

		logger := logging.FromContext(cmd.Context())
		h, err := buildHost(logger)
		if err != nil {
			// The profile check reports why.
			h = host.NewSystem()
		}
		checks = append(checks,
			&doctor.HostCheck{Host: h, Override: hardwareFlag},
			&doctor.CapabilityCheck{Cache: device.NewCache(h,
				device.WithLogger(logger),
				device.WithHardwareOverride(hardwareFlag),
			)},
		)

		return runDoctorWithWriter(cmd.Context(), os.Stdout, doctor.NewRunner(checks...), doctorJSON, doctorVerbose)
	},
}

// runDoctorWithWriter runs r and prints its report to w. The returned
// error carries the exit code for warnings and errors.
func runDoctorWithWriter(ctx context.Context, w io.Writer, r *doctor.Runner, asJSON, showAll bool) error {
	report := r.Run(ctx)

	if asJSON {
		data, err := export.Marshal(report, export.FormatJSON)
		if err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(err, "writing report")
		}
	} else {
		printDoctorText(w, report, showAll)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func printDoctorText(w io.Writer, report *doctor.Report, showAll bool) {
	hint := color.New(color.FgHiBlack)
	shown := 0
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}
		shown++
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			hint.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}
	if shown > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

var (
	errDoctorWarnings = errors.New("warnings found")
	errDoctorErrors   = errors.New("errors found")
)
