package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"primer"
	"primer/pkg/session"
)

var readCmd = &cobra.Command{
	Use:   "read [chapter]",
	Short: "Render a chapter in the terminal",
	Long: `Renders a chapter with terminal styling. Without an argument, resumes the
session's current chapter (or starts at the first chapter). With --session,
progress is saved so the next read continues where you left off.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRead(cmd, args); err != nil {
			fmt.Printf("read failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringP("session", "s", "", "Session ID for tracked reading progress")
	readCmd.Flags().Bool("raw", false, "Print raw Markdown without terminal styling")
}

func runRead(cmd *cobra.Command, args []string) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}

	sessionID, _ := cmd.Flags().GetString("session")
	ctx := context.Background()

	var mgr *session.Manager
	chapterID := ""
	if len(args) > 0 {
		chapterID = args[0]
	}

	if sessionID != "" {
		store, err := newStore(cmd)
		if err != nil {
			return err
		}
		mgr = session.NewManager(store, session.WithLogger(cmdLogger(cmd)))

		first, err := book.First()
		if err != nil {
			return err
		}
		state, err := mgr.LoadOrStart(ctx, sessionID, first)
		if err != nil {
			return err
		}
		if chapterID == "" {
			chapterID = state.CurrentChapterID
		}
	}

	if chapterID == "" {
		chapterID, err = book.First()
		if err != nil {
			return err
		}
	}

	if err := renderChapter(cmd, book, chapterID); err != nil {
		return err
	}

	next, err := book.Next(chapterID)
	if err != nil {
		return err
	}

	if mgr != nil {
		if err := saveProgress(ctx, mgr, sessionID, chapterID, next); err != nil {
			return err
		}
	}

	if next != "" {
		fmt.Printf("\nNext: primer read %s\n", next)
	} else {
		fmt.Println("\nYou have reached the end of the book.")
	}
	return nil
}

func renderChapter(cmd *cobra.Command, book *primer.Book, chapterID string) error {
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		body, err := book.Raw(chapterID)
		if err != nil {
			return fmt.Errorf("load chapter %s: %w", chapterID, err)
		}
		fmt.Print(string(body))
		return nil
	}

	out, err := book.RenderTerm(chapterID)
	if err != nil {
		return fmt.Errorf("render chapter %s: %w", chapterID, err)
	}
	fmt.Print(out)
	return nil
}

// saveProgress records the visit and positions the session on the next
// chapter, marking the session completed at the end of the book.
func saveProgress(ctx context.Context, mgr *session.Manager, sessionID, current, next string) error {
	state, err := mgr.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if !state.Visited(current) {
		state.History = append(state.History, current)
	}
	if next != "" {
		state.CurrentChapterID = next
	} else {
		state.CurrentChapterID = current
		state.Completed = true
	}

	return mgr.Save(ctx, sessionID, state)
}
