package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"licensegraph/internal/graph"
)

var (
	licenseJSON     bool
	licenseCategory string
	licenseFamily   string
)

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Inspect licenses in the catalog",
}

var licenseShowCmd = &cobra.Command{
	Use:   "show <license>",
	Short: "Show a license with its obligations, rights and direct relations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		d := g.GetLicenseDetails(args[0])
		if d == nil {
			return fmt.Errorf("license not found: %s", graph.NormalizeID(args[0]))
		}
		w := cmd.OutOrStdout()
		if licenseJSON {
			return writeJSON(w, d)
		}

		l := d.License
		fmt.Fprintf(w, "\n  %s  %s\n", l.ID, l.DisplayName)
		fmt.Fprintf(w, "  category=%s copyleft=%s family=%s\n", l.Category, l.CopyleftStrength, orDash(l.Family))
		if l.Deprecated {
			fmt.Fprintln(w, "  ! deprecated identifier")
		}
		if len(d.Obligations) > 0 {
			fmt.Fprintln(w, "\n  Obligations:")
			for _, o := range d.Obligations {
				fmt.Fprintf(w, "    %-20s %-16s %s\n", o.Obligation.ID, o.Scope, o.Obligation.Name)
			}
		}
		if len(d.Rights) > 0 {
			ids := make([]string, len(d.Rights))
			for i, r := range d.Rights {
				ids[i] = r.ID
			}
			fmt.Fprintf(w, "\n  Rights: %s\n", strings.Join(ids, ", "))
		}
		fmt.Fprintf(w, "\n  Compatible with (%d): %s\n", len(d.CompatibleWith), strings.Join(d.CompatibleWith, ", "))
		fmt.Fprintf(w, "  Directly related (%d): %s\n\n", len(d.DirectlyRelatedTo), strings.Join(d.DirectlyRelatedTo, ", "))
		return nil
	},
}

var licenseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search licenses by id or display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		return printLicenses(cmd.OutOrStdout(), g.SearchLicenses(args[0]))
	},
}

var licenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List licenses, optionally filtered by category or family",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		var licenses []graph.LicenseNode
		switch {
		case licenseCategory != "":
			cat := graph.Category(strings.ToUpper(licenseCategory))
			if !cat.Valid() {
				return fmt.Errorf("unknown category %q (one of %s)", licenseCategory, categoryNames())
			}
			licenses = g.GetLicensesByCategory(cat)
			if licenseFamily != "" {
				licenses = filterFamily(licenses, licenseFamily)
			}
		case licenseFamily != "":
			licenses = g.GetLicensesByFamily(licenseFamily)
		default:
			licenses = g.Licenses()
		}
		return printLicenses(cmd.OutOrStdout(), licenses)
	},
}

func init() {
	licenseCmd.PersistentFlags().BoolVar(&licenseJSON, "json", false, "Output as JSON")
	licenseListCmd.Flags().StringVar(&licenseCategory, "category", "", "Only licenses of this category")
	licenseListCmd.Flags().StringVar(&licenseFamily, "family", "", "Only licenses of this family")
	licenseCmd.AddCommand(licenseShowCmd, licenseSearchCmd, licenseListCmd)
	rootCmd.AddCommand(licenseCmd)
}

func printLicenses(w io.Writer, licenses []graph.LicenseNode) error {
	if licenseJSON {
		if licenses == nil {
			licenses = []graph.LicenseNode{}
		}
		return writeJSON(w, licenses)
	}
	if len(licenses) == 0 {
		fmt.Fprintln(w, "no licenses found")
		return nil
	}
	for _, l := range licenses {
		mark := ""
		if l.Deprecated {
			mark = "  (deprecated)"
		}
		fmt.Fprintf(w, "  %-20s %-17s %s%s\n", l.ID, l.Category, truncText(l.DisplayName, 50), mark)
	}
	return nil
}

func filterFamily(licenses []graph.LicenseNode, family string) []graph.LicenseNode {
	var out []graph.LicenseNode
	for _, l := range licenses {
		if strings.EqualFold(l.Family, family) {
			out = append(out, l)
		}
	}
	return out
}

func categoryNames() string {
	names := make([]string, len(graph.Categories))
	for i, c := range graph.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
