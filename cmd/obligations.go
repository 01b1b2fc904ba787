package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var obligationsJSON bool

var obligationsCmd = &cobra.Command{
	Use:   "obligations <license>...",
	Short: "Aggregate the obligations of a set of licenses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		summary := g.AggregateObligations(args)
		w := cmd.OutOrStdout()
		if obligationsJSON {
			return writeJSON(w, summary)
		}

		fmt.Fprintf(w, "\n  %d obligations across %d licenses\n", len(summary.Obligations), summary.TotalLicenses)
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		for _, o := range summary.Obligations {
			fmt.Fprintf(w, "  %-20s %-16s effort=%-4s  %s\n", o.ObligationID, o.Scope, o.Effort, strings.Join(o.Sources, ", "))
		}
		if len(summary.UnknownLicenses) > 0 {
			fmt.Fprintf(w, "  not in catalog: %s\n", strings.Join(summary.UnknownLicenses, ", "))
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	obligationsCmd.Flags().BoolVar(&obligationsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(obligationsCmd)
}
