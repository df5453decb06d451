package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

var (
	cfgFile   string
	dataDir   string
	logLevel  string
	logOutput string
)

var rootCmd = &cobra.Command{
	Use:   "strata-mcp",
	Short: "MCP server for PDF document intelligence",
	Long: `Strata is an MCP server that serves a directory of PDF engineering
documents over stdio.

The server provides:
  - Document tools for listing, text extraction, metadata and search
  - Structure tools that reconstruct section outlines from numbered headings
  - Component tools backed by a knowledge graph of Meridian platform components
  - Compliance tools that extract rules from standards and validate claims`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.strata-mcp/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", "directory holding the PDF documents (default: ./data)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error or fatal",
	)
	rootCmd.PersistentFlags().StringVar(
		&logOutput, "log-output", "", "log destination: stderr or file",
	)

	rootCmd.SetVersionTemplate(fmt.Sprintf("strata-mcp %s\n", version))
}
