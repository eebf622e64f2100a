package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"primer/internal/presentation/graph"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Print the table of contents",
	Long: `Lists chapters in reading order. With --mermaid, emits a Mermaid flowchart
of the reading path instead; combined with --session, the chart highlights
visited chapters and the current position.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTOC(cmd); err != nil {
			fmt.Printf("toc failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
	tocCmd.Flags().Bool("mermaid", false, "Emit a Mermaid flowchart")
	tocCmd.Flags().StringP("session", "s", "", "Overlay reading progress from this session")
}

func runTOC(cmd *cobra.Command) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}

	toc, err := book.TOC()
	if err != nil {
		return err
	}

	if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
		overlay, err := progressOverlay(cmd)
		if err != nil {
			return err
		}
		fmt.Print(graph.GenerateMermaid(toc, overlay))
		return nil
	}

	for i, entry := range toc {
		fmt.Printf("%2d. %-20s %s\n", i+1, entry.ChapterID, entry.Title)
	}
	return nil
}

func progressOverlay(cmd *cobra.Command) (*graph.Overlay, error) {
	sessionID, _ := cmd.Flags().GetString("session")
	if sessionID == "" {
		return nil, nil
	}

	store, err := newStore(cmd)
	if err != nil {
		return nil, err
	}
	state, err := store.Load(context.Background(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	return &graph.Overlay{
		VisitedChapters: state.History,
		CurrentChapter:  state.CurrentChapterID,
	}, nil
}
