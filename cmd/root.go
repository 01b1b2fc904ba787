package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"licensegraph/internal/catalog"
	"licensegraph/internal/graph"
)

const catalogEnv = "LICENSEGRAPH_CATALOG"

var (
	catalogPath string
	verbose     bool
	logger      = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "licensegraph",
	Short:         "License compatibility reasoning over a curated license graph",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a SQLite catalog snapshot (default: built-in reference catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// newLogger builds the CLI logger. Logs go to stderr so stdout stays parseable.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// CatalogPath resolves the snapshot to load using priority: flag > env.
// An empty result means the built-in reference catalog.
func CatalogPath() (string, error) {
	if catalogPath != "" {
		if _, err := os.Stat(catalogPath); err != nil {
			return "", fmt.Errorf("catalog not found at --catalog path: %s", catalogPath)
		}
		return catalogPath, nil
	}
	if envPath := os.Getenv(catalogEnv); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("catalog not found at %s: %s", catalogEnv, envPath)
		}
		return envPath, nil
	}
	return "", nil
}

// loadGraph builds the frozen license graph the commands query
func loadGraph() (*graph.Graph, error) {
	path, err := CatalogPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Debug("using built-in reference catalog")
		return catalog.Load(logger)
	}
	logger.Debug("using catalog snapshot", zap.String("path", path))
	return catalog.LoadFile(path, logger)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
