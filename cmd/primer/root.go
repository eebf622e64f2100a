package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"primer"
	"primer/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "Primer is a verifiable handbook engine",
	Long: `Primer ships an embedded server-side Go handbook and the tools to verify,
render, and serve any chapter directory written in the same format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Chapter directory (default: the embedded handbook)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// openBook builds a Book from the persistent flags.
func openBook(cmd *cobra.Command) (*primer.Book, error) {
	dir, _ := cmd.Flags().GetString("dir")
	return primer.New(dir, primer.WithLogger(cmdLogger(cmd)))
}

func cmdLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
