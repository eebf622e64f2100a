package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search chapter bodies for a phrase",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSearch(cmd, args[0]); err != nil {
			fmt.Printf("search failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, query string) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}

	matches, err := book.Search(query)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%-20s %s\n", m.ChapterID, m.Excerpt)
	}
	return nil
}
