package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"primer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of primer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("primer version %s\n", strings.TrimSpace(primer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
