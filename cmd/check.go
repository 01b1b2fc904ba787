package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"licensegraph/internal/graph"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <license-a> <license-b>",
	Short: "Check whether code under license A can be combined with license B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		res := g.CheckCompatibility(args[0], args[1])
		if checkJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		printCompatibility(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(checkCmd)
}

func printCompatibility(w io.Writer, res graph.CompatibilityResult) {
	verdict := "incompatible"
	if res.Compatible {
		verdict = "compatible"
	}
	fmt.Fprintf(w, "\n  %s + %s: %s (%s)\n", res.LicenseA, res.LicenseB, res.Level, verdict)
	fmt.Fprintf(w, "  basis: %s\n", res.Basis)
	if res.DominantLicense != "" {
		fmt.Fprintf(w, "  dominant license: %s\n", res.DominantLicense)
	}
	if res.Notes != "" {
		fmt.Fprintf(w, "  notes: %s\n", res.Notes)
	}
	if res.RequiresReview {
		fmt.Fprintln(w, "  ! requires legal review")
	}
	fmt.Fprintln(w)
}
