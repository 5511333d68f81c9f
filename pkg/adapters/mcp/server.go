package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/taskboard"
	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/aretw0/taskboard/pkg/ports"
	"github.com/aretw0/taskboard/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const boardURI = "taskboard://board"

// BoardResponse is the structured result of every mutating tool.
type BoardResponse struct {
	Board   *domain.Board `json:"board" jsonschema_description:"The board after the action"`
	Changed bool          `json:"changed" jsonschema_description:"False when the action left the board untouched"`
}

// Server exposes a Dispatcher as an MCP server.
type Server struct {
	dispatcher ports.Dispatcher
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(d ports.Dispatcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		dispatcher: d,
		logger:     logger,
		mcpServer:  server.NewMCPServer("taskboard-mcp", strings.TrimSpace(taskboard.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on addr using SSE and stops when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}

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
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
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
	// TOOL: get_board
	s.mcpServer.AddTool(mcp.NewTool("get_board",
		mcp.WithDescription("Get the current board: lists in display order with their tasks."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.dispatcher.GetState())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: add_list
	s.mcpServer.AddTool(mcp.NewTool("add_list",
		mcp.WithDescription("Append a new, empty list at the end of the board."),
		mcp.WithString("text", mcp.Required(), mcp.Description("List title")),
		mcp.WithOutputSchema[BoardResponse](),
	), mcp.NewStructuredToolHandler(s.handleAddList))

	// TOOL: add_task
	s.mcpServer.AddTool(mcp.NewTool("add_task",
		mcp.WithDescription("Append a task to the list that already contains the reference task."),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("ID of an existing task in the target list")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Task text")),
		mcp.WithOutputSchema[BoardResponse](),
	), mcp.NewStructuredToolHandler(s.handleAddTask))

	// TOOL: move_list
	s.mcpServer.AddTool(mcp.NewTool("move_list",
		mcp.WithDescription("Move the list at drag_index so that it ends up at hover_index."),
		mcp.WithNumber("drag_index", mcp.Required(), mcp.Description("Current position of the list")),
		mcp.WithNumber("hover_index", mcp.Required(), mcp.Description("Target position")),
		mcp.WithOutputSchema[BoardResponse](),
	), mcp.NewStructuredToolHandler(s.handleMoveList))

	// TOOL: set_dragged_item
	s.mcpServer.AddTool(mcp.NewTool("set_dragged_item",
		mcp.WithDescription("Mark an item as being dragged. Omit id to clear the marker."),
		mcp.WithString("type", mcp.Description("LIST or TASK")),
		mcp.WithString("id", mcp.Description("ID of the dragged item")),
		mcp.WithNumber("index", mcp.Description("Current position of the item")),
		mcp.WithString("list_id", mcp.Description("Owning list, for tasks")),
		mcp.WithString("text", mcp.Description("Display text")),
		mcp.WithOutputSchema[BoardResponse](),
	), mcp.NewStructuredToolHandler(s.handleSetDraggedItem))

	// TOOL: dispatch
	s.mcpServer.AddTool(mcp.NewTool("dispatch",
		mcp.WithDescription("Dispatch a raw action envelope, e.g. {\"type\":\"ADD_LIST\",\"payload\":\"Backlog\"}."),
		mcp.WithString("action", mcp.Required(), mcp.Description("JSON action envelope")),
		mcp.WithOutputSchema[BoardResponse](),
	), mcp.NewStructuredToolHandler(s.handleDispatch))
}

// Handler methods for structured tools

func (s *Server) handleAddList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BoardResponse, error) {
	return s.apply(ctx, domain.ActionAddList, map[string]any{"text": args["text"]})
}

func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BoardResponse, error) {
	return s.apply(ctx, domain.ActionAddTask, map[string]any{
		"text":   args["text"],
		"taskId": args["task_id"],
	})
}

func (s *Server) handleMoveList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BoardResponse, error) {
	return s.apply(ctx, domain.ActionMoveList, map[string]any{
		"dragIndex":  args["drag_index"],
		"hoverIndex": args["hover_index"],
	})
}

func (s *Server) handleSetDraggedItem(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BoardResponse, error) {
	id, _ := args["id"].(string)
	if id == "" {
		return s.apply(ctx, domain.ActionSetDraggedItem, nil)
	}

	payload := map[string]any{"id": id}
	for arg, key := range map[string]string{
		"type":    "type",
		"index":   "index",
		"list_id": "listId",
		"text":    "text",
	} {
		if v, ok := args[arg]; ok {
			payload[key] = v
		}
	}
	return s.apply(ctx, domain.ActionSetDraggedItem, payload)
}

func (s *Server) handleDispatch(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (BoardResponse, error) {
	raw, _ := args["action"].(string)
	action, err := schema.DecodeAction([]byte(raw))
	if err != nil {
		return BoardResponse{}, fmt.Errorf("invalid action: %w", err)
	}
	return s.dispatch(ctx, action)
}

func (s *Server) apply(ctx context.Context, typ domain.ActionType, payload any) (BoardResponse, error) {
	action, err := schema.ActionFromPayload(typ, payload)
	if err != nil {
		return BoardResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	return s.dispatch(ctx, action)
}

func (s *Server) dispatch(ctx context.Context, action domain.Action) (BoardResponse, error) {
	before := s.dispatcher.GetState()
	if err := s.dispatcher.Dispatch(ctx, action); err != nil {
		s.logger.Warn("MCP: action rejected", "action", action.Kind(), "err", err)
		return BoardResponse{}, fmt.Errorf("%s rejected: %w", action.Kind(), err)
	}
	after := s.dispatcher.GetState()
	return BoardResponse{Board: after, Changed: after != before}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: taskboard://board
	s.mcpServer.AddResource(mcp.NewResource(boardURI, "Current Board",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.dispatcher.GetState())
		if err != nil {
			return nil, fmt.Errorf("failed to encode board: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      boardURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
