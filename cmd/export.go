package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"licensegraph/internal/catalog"
	"licensegraph/internal/db"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the loaded catalog to a SQLite snapshot usable with --catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		d, err := db.OpenDB(exportOut)
		if err != nil {
			return err
		}
		defer d.Close()

		c := catalog.FromGraph(g)
		if err := c.WriteDB(d); err != nil {
			return err
		}
		logger.Info("catalog exported",
			zap.String("path", exportOut),
			zap.Int("licenses", len(c.Licenses)),
			zap.Int("edges", len(c.Edges)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d licenses and %d edges to %s\n", len(c.Licenses), len(c.Edges), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Destination SQLite file")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
