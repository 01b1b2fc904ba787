package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"licensegraph/internal/graph"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the loaded license catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		s := g.GetStatistics()
		w := cmd.OutOrStdout()
		if statsJSON {
			return writeJSON(w, s)
		}

		fmt.Fprintln(w, "\n  CATALOG")
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		fmt.Fprintf(w, "  Licenses: %d (%d deprecated)  Obligations: %d  Rights: %d\n",
			s.TotalLicenses, s.DeprecatedLicenses, s.TotalObligations, s.TotalRights)
		fmt.Fprintf(w, "  Edges: %d  Compatibility clusters: %d\n", s.TotalEdges, s.CompatibilityClusters)
		fmt.Fprintf(w, "  Families: %s\n", strings.Join(s.Families, ", "))

		fmt.Fprintln(w, "\n  By category:")
		for _, c := range graph.Categories {
			if n := s.LicensesByCategory[c]; n > 0 {
				fmt.Fprintf(w, "    %-17s %4d\n", c, n)
			}
		}
		fmt.Fprintln(w, "\n  Edges by level:")
		for _, l := range []graph.CompatibilityLevel{
			graph.LevelFull, graph.LevelOneWay, graph.LevelConditional, graph.LevelUnknown, graph.LevelIncompatible,
		} {
			if n := s.EdgesByLevel[l]; n > 0 {
				fmt.Fprintf(w, "    %-17s %4d\n", l, n)
			}
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}
