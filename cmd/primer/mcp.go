package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpadapter "primer/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the book over the Model Context Protocol",
	Long: `Starts an MCP server so agent tooling can browse the book. Chapters and the
table of contents are resources; reading, search, and verification are tools.
Stdio transport is the default; use --transport sse for a network server.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMCP(cmd); err != nil {
			fmt.Printf("mcp failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().IntP("port", "p", 8765, "Port for the SSE transport")
}

func runMCP(cmd *cobra.Command) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}

	srv := mcpadapter.NewServer(book)

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "sse":
		port, _ := cmd.Flags().GetInt("port")
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ServeSSE(ctx, port)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
	}
}
