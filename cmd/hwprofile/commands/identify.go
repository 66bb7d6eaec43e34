package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/device"
	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
)

var identifyPick bool

func init() {
	identifyCmd.Flags().BoolVar(&identifyPick, "pick", false,
		"choose a hardware identifier interactively from the catalog")
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Show the current device and its capabilities",
	Long: `Resolve the current device from the host's hardware identifier and print
its kind, name, versions and available capabilities.

Unrecognized identifiers resolve to the simulator variant.

Examples:
  # Identify the running host
  hwprofile identify

  # Pick a catalog entry and identify it as if it were the host
  hwprofile identify --pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		override := hardwareOverride()
		if identifyPick {
			picked, err := pickIdentifier(hardware.Catalog())
			if err != nil {
				return err
			}
			if picked == "" {
				return nil
			}
			override = picked
		}

		cache, err := newCache(cmd, override)
		if err != nil {
			return err
		}
		return runIdentifyWithWriter(os.Stdout, cache.Current())
	},
}

// pickIdentifier lets the user fuzzy-search the catalog. An aborted
// search returns an empty identifier and no error.
func pickIdentifier(models []hardware.Model) (string, error) {
	idx, err := fuzzyfinder.Find(
		models,
		func(i int) string {
			return fmt.Sprintf("%s  %s", models[i].Identifier, models[i].Name)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			id := hardware.Parse(models[i].Identifier)
			return fmt.Sprintf("Identifier: %s\nName: %s\nFamily: %s\nMajor: %d\nMinor: %d",
				models[i].Identifier, models[i].Name, id.Family, id.Major, id.Minor)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive pick failed")
	}
	return models[idx].Identifier, nil
}

// runIdentifyWithWriter prints d's properties to w. A host that cannot
// supply a device ID shows "unsupported"; any other ID failure is returned.
func runIdentifyWithWriter(w io.Writer, d *device.Device) error {
	id, err := d.ID()
	switch {
	case errors.Is(err, errors.ErrUnsupported):
		id = "unsupported"
	case err != nil:
		return errors.NewSystemError(
			errors.Wrap(err, "reading device id"),
			"Run 'hwprofile doctor' to check the host",
		)
	}

	label := color.New(color.Bold)
	present := color.New(color.FgGreen)
	absent := color.New(color.FgHiBlack)

	row := func(name, value string) {
		label.Fprintf(w, "%-14s", name+":")
		fmt.Fprintf(w, " %s\n", value)
	}

	row("Kind", d.Kind().String())
	row("Name", d.Name())
	row("Manufacturer", d.Manufacturer())
	row("Hardware", d.HardwareVersion())
	if major, minor, ok := d.Model(); ok {
		row("Model", fmt.Sprintf("%d.%d", major, minor))
	}
	firmware := d.FirmwareVersion()
	if firmware == "" {
		firmware = "-"
	}
	row("Firmware", firmware)
	row("ID", id)

	label.Fprintln(w, "Capabilities:")
	have := make(map[string]bool)
	for _, c := range d.Capabilities() {
		have[c] = true
	}
	for _, c := range device.AllCapabilities() {
		if have[c] {
			present.Fprintf(w, "  + %s\n", c)
		} else {
			absent.Fprintf(w, "  - %s\n", c)
		}
	}
	return nil
}
