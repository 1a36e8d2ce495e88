package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time.
var version = "dev"

var (
	verbose bool
	output  string

	logger   = zap.NewNop()
	logLevel = zap.NewAtomicLevel()
)

var rootCmd = &cobra.Command{
	Use:   "slangbot",
	Short: "Explain slang and invent new slang with a language model",
	Long: `slangbot explains slang terms in a chosen tone, persona and language, and
coins new words or sayings from a seed concept.

Run "slangbot serve" for the HTTP API or "slangbot mcp" to expose the same
operations as MCP tools over stdio.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			logLevel.SetLevel(zapcore.DebugLevel)
		}
		config.Level = logLevel
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(soundCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
