package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/extfind/internal/filesystem"
	"github.com/taigrr/extfind/internal/finder"
	"github.com/taigrr/extfind/internal/logging"
)

var (
	fileSystem    *filesystem.Service
	finderService *finder.Service
)

func newServeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve [root]",
		Short: "Serve extfind as an MCP tool over stdio",
		Long: `serve starts a Model Context Protocol (MCP) server on stdin/stdout
that exposes a "find" tool. Searches are confined to the root
directory, which defaults to the current directory.`,
		Example: `extfind serve ~/src`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rootPath string
			if len(args) > 0 {
				rootPath = args[0]
			} else {
				var err error
				rootPath, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
			}

			// stdout carries the protocol; diagnostics go to stderr only
			fileSystem = filesystem.New(rootPath)
			finderService = finder.New(logging.New(cmd.ErrOrStderr(), verbose))

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "extfind",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report unreadable entries on stderr")

	return cmd
}
