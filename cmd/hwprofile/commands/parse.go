package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hwprofile/internal/hardware"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <identifier>...",
	Short: "Parse raw hardware identifiers",
	Long: `Parse one or more raw hardware identifier strings and print the family,
major and minor model numbers each one encodes.

Strings that match no family are reported as unknown.

Examples:
  hwprofile parse iPhone6,1 iPod4,1 iPad2,5
  hwprofile parse x86_64`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runParseWithWriter(os.Stdout, args)
	},
}

// runParseWithWriter writes one row per raw identifier to w.
func runParseWithWriter(w io.Writer, raws []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RAW\tFAMILY\tMAJOR\tMINOR\tNAME")
	for _, raw := range raws {
		id := hardware.Parse(raw)
		if !id.Valid() {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\n", raw, id.Family)
			continue
		}
		name := "-"
		if m, ok := hardware.Lookup(id); ok {
			name = m.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", raw, id.Family, id.Major, id.Minor, name)
	}
	return tw.Flush()
}
