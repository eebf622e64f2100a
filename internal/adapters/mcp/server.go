// Package mcp exposes a book to agent tooling over the Model Context
// Protocol: chapters as resources, reading and verification as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"primer"
	"primer/pkg/domain"
)

// ChapterResponse is the structured payload of the read_chapter tool.
type ChapterResponse struct {
	ID       string `json:"id" jsonschema_description:"Chapter ID"`
	Title    string `json:"title" jsonschema_description:"Chapter title"`
	Markdown string `json:"markdown" jsonschema_description:"Chapter body as Markdown"`
}

// SearchResponse is the structured payload of the search_book tool.
type SearchResponse struct {
	Matches []domain.Match `json:"matches" jsonschema_description:"Chapters matching the query"`
}

// VerifyResponse is the structured payload of the verify_book tool.
type VerifyResponse struct {
	Findings []domain.Finding `json:"findings" jsonschema_description:"Structural findings"`
	Errors   bool             `json:"errors" jsonschema_description:"True if any finding is an error"`
}

// Server wraps a Book and exposes it as an MCP server.
type Server struct {
	book      *primer.Book
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server over the given book.
func NewServer(book *primer.Book) *Server {
	s := &Server{
		book:      book,
		mcpServer: server.NewMCPServer("primer-mcp", strings.TrimSpace(primer.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	readTool := mcp.NewTool("read_chapter",
		mcp.WithDescription("Read a chapter of the book as Markdown."),
		mcp.WithString("chapter_id", mcp.Required(), mcp.Description("The ID of the chapter to read")),
		mcp.WithOutputSchema[ChapterResponse](),
	)
	s.mcpServer.AddTool(readTool, mcp.NewStructuredToolHandler(s.handleReadChapter))

	searchTool := mcp.NewTool("search_book",
		mcp.WithDescription("Search chapter bodies for a case-insensitive substring."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to search for")),
		mcp.WithOutputSchema[SearchResponse](),
	)
	s.mcpServer.AddTool(searchTool, mcp.NewStructuredToolHandler(s.handleSearch))

	verifyTool := mcp.NewTool("verify_book",
		mcp.WithDescription("Run structural verification over the whole book."),
		mcp.WithOutputSchema[VerifyResponse](),
	)
	s.mcpServer.AddTool(verifyTool, mcp.NewStructuredToolHandler(s.handleVerify))

	s.mcpServer.AddTool(mcp.NewTool("get_toc",
		mcp.WithDescription("Get the table of contents in reading order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		toc, err := s.book.TOC()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("toc failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(toc)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleReadChapter(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ChapterResponse, error) {
	id, _ := args["chapter_id"].(string)
	if id == "" {
		return ChapterResponse{}, fmt.Errorf("chapter_id is required")
	}

	ch, err := s.book.Chapter(id)
	if err != nil {
		return ChapterResponse{}, fmt.Errorf("read chapter: %w", err)
	}

	return ChapterResponse{
		ID:       ch.ID,
		Title:    ch.Meta.Title,
		Markdown: string(ch.Body),
	}, nil
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SearchResponse, error) {
	query, _ := args["query"].(string)

	matches, err := s.book.Search(query)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search failed: %w", err)
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	return SearchResponse{Matches: matches}, nil
}

func (s *Server) handleVerify(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (VerifyResponse, error) {
	findings, err := s.book.Verify()
	if err != nil {
		return VerifyResponse{}, fmt.Errorf("verify failed: %w", err)
	}
	if findings == nil {
		findings = []domain.Finding{}
	}
	return VerifyResponse{
		Findings: findings,
		Errors:   domain.HasErrors(findings),
	}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("primer://toc", "Table of Contents",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		toc, err := s.book.TOC()
		if err != nil {
			return nil, fmt.Errorf("load toc: %w", err)
		}
		jsonBytes, _ := json.Marshal(toc)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "primer://toc",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	// Chapters resolve per request, so books backed by a watched directory
	// pick up additions and edits without restarting the server.
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(
		"primer://chapters/{id}", "Book chapters",
		mcp.WithTemplateMIMEType("text/markdown"),
	), s.handleChapterResource)
}

func (s *Server) handleChapterResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := strings.TrimPrefix(request.Params.URI, "primer://chapters/")
	if id == "" || id == request.Params.URI {
		return nil, fmt.Errorf("invalid chapter URI %q", request.Params.URI)
	}

	ch, err := s.book.Chapter(id)
	if err != nil {
		return nil, fmt.Errorf("load chapter %s: %w", id, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(ch.Body),
		},
	}, nil
}
