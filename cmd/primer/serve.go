package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"primer"
	httpadapter "primer/internal/adapters/http"
	redisadapter "primer/internal/adapters/redis"
	"primer/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the book over HTTP",
	Long: `Starts a read-only JSON/HTML API for the book. Endpoints include the table
of contents, rendered chapters, structural verification, Prometheus metrics,
and (when serving a directory) a live-reload event stream. API docs are at
/swagger.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("serve failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Duration("cache-ttl", 10*time.Minute, "Render cache TTL (requires --redis)")
}

func runServe(cmd *cobra.Command) error {
	book, err := openBook(cmd)
	if err != nil {
		return err
	}
	logger := cmdLogger(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []httpadapter.Option{httpadapter.WithLogger(logger)}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		ttl, _ := cmd.Flags().GetDuration("cache-ttl")
		client := backend.NewClient(&backend.Options{Addr: addr})
		defer client.Close()

		cache := redisadapter.NewCache(client, ttl)
		opts = append(opts, httpadapter.WithCache(cache))
		logger.Info("render cache enabled", "redis", addr, "ttl", ttl)

		go invalidateOnChange(ctx, book, cache, logger)
	}

	handler, err := httpadapter.NewHandler(ctx, book, opts...)
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	port, _ := cmd.Flags().GetInt("port")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	tui.PrintBanner(strings.TrimSpace(primer.Version))

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("serving book", "book", book.Name, "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// invalidateOnChange drops cached renders whenever the chapter directory
// changes. A no-op for the embedded book, which cannot change.
func invalidateOnChange(ctx context.Context, book *primer.Book, cache *redisadapter.Cache, logger *slog.Logger) {
	events, err := book.Watch(ctx)
	if err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			if err := cache.Invalidate(ctx); err != nil {
				logger.Warn("cache invalidation failed", "err", err)
			}
		}
	}
}
