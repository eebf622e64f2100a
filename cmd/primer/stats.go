package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word and code example counts for the book",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStats(cmd); err != nil {
			fmt.Printf("stats failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}

	chapters, err := book.Chapters()
	if err != nil {
		return err
	}

	totalWords := 0
	totalBlocks := 0
	byLang := map[string]int{}

	fmt.Printf("%-20s %8s %8s %8s\n", "CHAPTER", "WORDS", "BLOCKS", "LINKS")
	for _, ch := range chapters {
		words := len(strings.Fields(string(ch.Body)))
		totalWords += words
		totalBlocks += len(ch.CodeBlocks)
		for _, block := range ch.CodeBlocks {
			byLang[block.Lang]++
		}
		fmt.Printf("%-20s %8d %8d %8d\n", ch.ID, words, len(ch.CodeBlocks), len(ch.Links))
	}

	fmt.Printf("\n%d chapters, %d words, %d code examples\n", len(chapters), totalWords, totalBlocks)

	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		name := lang
		if name == "" {
			name = "(untagged)"
		}
		fmt.Printf("  %-12s %d\n", name, byLang[lang])
	}
	return nil
}
