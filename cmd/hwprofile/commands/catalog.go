package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/hardware"
)

var catalogFamily string

func init() {
	catalogCmd.Flags().StringVar(&catalogFamily, "family", "",
		"only list one family: phone, pod, pad")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List known hardware identifiers",
	Long: `List the hardware identifiers with a known marketing name.

Examples:
  hwprofile catalog
  hwprofile catalog --family pad`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCatalogWithWriter(os.Stdout, catalogFamily)
	},
}

// runCatalogWithWriter writes the catalog, optionally filtered to one
// family, as a table to w.
func runCatalogWithWriter(w io.Writer, family string) error {
	want := hardware.FamilyUnknown
	if family != "" {
		for _, f := range []hardware.Family{hardware.FamilyPhone, hardware.FamilyPod, hardware.FamilyPad} {
			if strings.EqualFold(f.String(), family) {
				want = f
			}
		}
		if want == hardware.FamilyUnknown {
			return errors.NewUserError(
				errors.Newf("unknown family %q", family),
				"Valid families: phone, pod, pad",
			)
		}
	}

	header := color.New(color.Bold)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header.Fprintln(tw, "IDENTIFIER\tFAMILY\tNAME")
	for _, m := range hardware.Catalog() {
		id := hardware.Parse(m.Identifier)
		if want != hardware.FamilyUnknown && id.Family != want {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Identifier, id.Family, m.Name)
	}
	return tw.Flush()
}
