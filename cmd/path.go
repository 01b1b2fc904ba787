package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"licensegraph/internal/graph"
)

var pathJSON bool

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Find the shortest chain of compatible licenses between two licenses",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		p := g.FindCompatibilityPath(args[0], args[1])
		w := cmd.OutOrStdout()
		if pathJSON {
			return writeJSON(w, p)
		}
		if p == nil {
			fmt.Fprintf(w, "no compatibility path from %s to %s\n",
				graph.NormalizeID(args[0]), graph.NormalizeID(args[1]))
			return nil
		}

		hops := "hops"
		if p.Hops() == 1 {
			hops = "hop"
		}
		fmt.Fprintf(w, "\n  %s\n", strings.Join(p.Licenses, " -> "))
		fmt.Fprintf(w, "  %d %s, weakest link %s\n", p.Hops(), hops, p.Level)
		// bidirectional edges may be walked target to source, so label hops by the path
		for i, e := range p.Edges {
			fmt.Fprintf(w, "    %s -> %s  %s", p.Licenses[i], p.Licenses[i+1], e.Level)
			if e.Notes != "" {
				fmt.Fprintf(w, "  (%s)", truncText(e.Notes, 60))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	pathCmd.Flags().BoolVar(&pathJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(pathCmd)
}

func truncText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// back up to the start of the rune that straddles the cut
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
