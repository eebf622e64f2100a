package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"primer/pkg/ports"

	filestore "primer/internal/adapters/file"
	redisstore "primer/internal/adapters/redis"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage reading sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known sessions and their positions",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSessionsList(cmd); err != nil {
			fmt.Printf("sessions list failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <session-id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSessionsRm(cmd, args[0]); err != nil {
			fmt.Printf("sessions rm failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsRmCmd)

	rootCmd.PersistentFlags().String("sessions-path", "", "Directory for session files (default: .primer/sessions)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for sessions and caching (e.g. localhost:6379)")
}

// newStore picks the session backend: Redis when --redis is set, otherwise
// JSON files on disk.
func newStore(cmd *cobra.Command) (ports.StateStore, error) {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		return redisstore.New(addr, "", 0), nil
	}
	path, _ := cmd.Flags().GetString("sessions-path")
	return filestore.New(path), nil
}

func runSessionsList(cmd *cobra.Command) error {
	store, err := newStore(cmd)
	if err != nil {
		return err
	}
	ctx := context.Background()

	ids, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("no sessions")
		return nil
	}

	for _, id := range ids {
		state, err := store.Load(ctx, id)
		if err != nil {
			fmt.Printf("%-20s (unreadable: %v)\n", id, err)
			continue
		}
		status := fmt.Sprintf("at %s, %d read", state.CurrentChapterID, len(state.History))
		if state.Completed {
			status = "completed"
		}
		fmt.Printf("%-20s %s\n", id, status)
	}
	return nil
}

func runSessionsRm(cmd *cobra.Command, sessionID string) error {
	store, err := newStore(cmd)
	if err != nil {
		return err
	}
	if err := store.Delete(context.Background(), sessionID); err != nil {
		return err
	}
	fmt.Printf("session %s deleted\n", sessionID)
	return nil
}
