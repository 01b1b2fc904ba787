package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"licensegraph/internal/analyzer"
)

var (
	analyzeJSON  bool
	analyzeInput string
	analyzeTopN  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the licenses of a resolved dependency tree: conflicts, obligations, risk score",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := readDependencyFile(analyzeInput, cmd.InOrStdin())
		if err != nil {
			return err
		}

		g, err := loadGraph()
		if err != nil {
			return err
		}

		report := analyzer.Analyze(g, deps, analyzer.DefaultConfig())
		logger.Debug("dependency tree analyzed",
			zap.Int("dependencies", report.TotalDependencies),
			zap.Int("licenses", len(report.UniqueLicenses)),
			zap.Int("conflicts", len(report.Conflicts)),
			zap.String("status", string(report.ComplianceStatus)),
		)

		if analyzeJSON {
			return writeJSON(cmd.OutOrStdout(), report)
		}

		printAnalysis(cmd.OutOrStdout(), report, analyzeTopN)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "YAML or JSON dependency list (- for stdin)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 10, "Number of items to show per section")
	analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

// dependencyFile is the input document. A bare list of dependencies is accepted too.
type dependencyFile struct {
	Dependencies []analyzer.DependencyLicense `yaml:"dependencies"`
}

func readDependencyFile(path string, stdin io.Reader) ([]analyzer.DependencyLicense, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading dependency list: %w", err)
	}
	return parseDependencies(data)
}

func parseDependencies(data []byte) ([]analyzer.DependencyLicense, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing dependency list: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("parsing dependency list: document is empty")
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var deps []analyzer.DependencyLicense
		if err := doc.Decode(&deps); err != nil {
			return nil, fmt.Errorf("parsing dependency list: %w", err)
		}
		return deps, nil
	case yaml.MappingNode:
		var f dependencyFile
		if err := doc.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing dependency list: %w", err)
		}
		return f.Dependencies, nil
	default:
		return nil, errors.New("parsing dependency list: expected a list or a mapping with a dependencies key")
	}
}

func printAnalysis(w io.Writer, report *analyzer.DependencyTreeAnalysis, topN int) {
	if topN <= 0 {
		topN = len(report.Conflicts) + len(report.Recommendations)
	}

	// Risk bar
	barLen := int(report.RiskScore * 20)
	if barLen > 20 {
		barLen = 20
	}
	bar := strings.Repeat("█", barLen) + strings.Repeat("░", 20-barLen)
	fmt.Fprintf(w, "\n  License Risk: %.0f%%  [%s]  %s\n", report.RiskScore*100, bar, report.ComplianceStatus)
	fmt.Fprintf(w, "  breakdown: copyleft=%.2f conflicts=%.2f unknown=%.2f\n\n",
		report.RiskBreakdown.Copyleft,
		report.RiskBreakdown.Conflicts,
		report.RiskBreakdown.Unknown)

	fmt.Fprintln(w, "  LICENSES")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  Dependencies: %d  Licenses: %d  Dominant: %s\n",
		report.TotalDependencies, len(report.UniqueLicenses), orDash(report.DominantLicense))
	for _, id := range report.UniqueLicenses {
		fmt.Fprintf(w, "    %-20s %4d\n", id, report.LicenseDistribution[id])
	}
	if len(report.UnknownLicenses) > 0 {
		fmt.Fprintf(w, "  Not in catalog: %s\n", strings.Join(report.UnknownLicenses, ", "))
	}

	if len(report.Conflicts) > 0 {
		fmt.Fprintln(w, "\n  CONFLICTS")
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		fmt.Fprintf(w, "  %d blocking, %d needing review\n", report.BlockingConflicts(), report.ReviewConflicts())
		limit := topN
		if len(report.Conflicts) < limit {
			limit = len(report.Conflicts)
		}
		for _, c := range report.Conflicts[:limit] {
			fmt.Fprintf(w, "    [%s] %s + %s  %s\n", c.Severity, c.LicenseA, c.LicenseB, c.Level)
			if c.Notes != "" {
				fmt.Fprintf(w, "      %s\n", truncText(c.Notes, 70))
			}
		}
		if len(report.Conflicts) > limit {
			fmt.Fprintf(w, "    ... and %d more\n", len(report.Conflicts)-limit)
		}
	}

	if obs := report.Obligations.Obligations; len(obs) > 0 {
		fmt.Fprintln(w, "\n  OBLIGATIONS")
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		for _, o := range obs {
			fmt.Fprintf(w, "    %-20s %-16s %s\n", o.ObligationID, o.Scope, strings.Join(o.Sources, ", "))
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w, "\n  RECOMMENDATIONS")
		fmt.Fprintln(w, "  ────────────────────────────────────────")
		limit := topN
		if len(report.Recommendations) < limit {
			limit = len(report.Recommendations)
		}
		for _, r := range report.Recommendations[:limit] {
			fmt.Fprintf(w, "    %-6s %s\n", r.Priority, r.Message)
		}
		if len(report.Recommendations) > limit {
			fmt.Fprintf(w, "    ... and %d more\n", len(report.Recommendations)-limit)
		}
	}

	fmt.Fprintln(w)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
