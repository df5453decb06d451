package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/docstrata/strata-mcp/internal/config"
	"github.com/docstrata/strata-mcp/internal/logger"
	"github.com/docstrata/strata-mcp/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server on standard input and output.

Logs never go to stdout because the MCP protocol owns that stream. Use
--log-output to send them to stderr or a file instead.

Examples:
  strata-mcp serve
  strata-mcp serve --data-dir /srv/meridian/docs
  strata-mcp serve --log-level debug --log-output stderr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Flags take precedence over config file and environment values
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logOutput != "" {
			cfg.Log.Output = logOutput
		}

		log, err := logger.NewLogger(logger.LogConfig{
			Output:   cfg.Log.Output,
			Level:    cfg.Log.Level,
			FilePath: cfg.Log.FilePath,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		log.Info("Starting strata-mcp server, data directory: %s", cfg.DataDir)

		srv := server.CreateServer(cfg, log)
		if err := srv.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
			log.Error("Server failed: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
