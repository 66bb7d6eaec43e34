package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/export"
	"github.com/thoreinstein/hwprofile/internal/logging"
	"github.com/thoreinstein/hwprofile/pkg/fileutil"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "",
		"output format: "+strings.Join(formats, ", ")+" (default: from --out extension, else json)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current device profile",
	Long: `Serialize a snapshot of the current device, including battery state and
display metrics when available.

Files are written atomically.

Examples:
  hwprofile export
  hwprofile export --profile iphone --out iphone.yaml
  hwprofile export --format cbor --out device.cbor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cache, err := newCache(cmd, hardwareOverride())
		if err != nil {
			return err
		}
		return runExportWithWriter(cmd.Context(), os.Stdout, cache.Current(), exportFormat, exportOut)
	},
}

// runExportWithWriter marshals a snapshot of d. When out is empty the
// result goes to w.
func runExportWithWriter(ctx context.Context, w io.Writer, d *device.Device, format, out string) error {
	f := export.FormatForPath(out)
	if format != "" {
		var err error
		f, err = export.ParseFormat(format)
		if err != nil {
			return errors.NewUserError(err, "Run 'hwprofile export --help' to see valid formats")
		}
	}

	p, err := device.Snapshot(ctx, d)
	if err != nil {
		return errors.NewSystemError(
			errors.Wrap(err, "reading device state"),
			"Run 'hwprofile doctor' to check the host",
		)
	}

	data, err := export.Marshal(p, f)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", f)
	}

	if out == "" {
		if f.Binary() && logging.IsTTY(w) {
			return errors.NewUserError(
				errors.Newf("refusing to write %s to a terminal", f),
				"Use --out to write to a file",
			)
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing export")
	}

	if err := fileutil.AtomicWriteFile(out, data, 0o644); err != nil {
		return errors.NewSystemError(err, "Check that the output directory exists and is writable")
	}
	logging.FromContext(ctx).Info("exported device profile", "path", out, "format", string(f))
	fmt.Fprintf(w, "Wrote %s\n", out)
	return nil
}
