package cli

import (
	"github.com/ironsheep/backdrop-mcp/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run the MCP server on stdin/stdout.

The server speaks JSON-RPC 2.0, one request per line. Logs go to stderr
since stdout carries the protocol. Configure it in your MCP client as:

  {"command": "pbc", "args": ["serve"]}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	server.Version = version
	logger.Info("starting MCP server", "name", server.Name, "version", version)

	srv := server.NewWithConfig(cfg, logger)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
