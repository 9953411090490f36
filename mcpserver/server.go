package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/params"
	"github.com/kova98/redditmcp/tools"
)

// Server dispatches JSON-RPC requests to the tool service. One request is
// fully processed before the next line is read; the service itself is
// stateless, so nothing here needs locking.
type Server struct {
	logger  *slog.Logger
	service *tools.Service
	info    ServerInfo
}

func NewServer(logger *slog.Logger, service *tools.Service) *Server {
	return &Server{
		logger:  logger,
		service: service,
		info:    ServerInfo{Name: "redditmcp", Version: "1.0.0"},
	}
}

// ServeStdio blocks until stdin is closed or ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReaderSize(in, 64*1024)
	encoder := json.NewEncoder(out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// ReadString grows with the line, so an oversized request yields a
		// parse error response instead of ending the session.
		line, readErr := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if err := s.serveLine(ctx, encoder, []byte(trimmed)); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read request: %w", readErr)
		}
	}
}

func (s *Server) serveLine(ctx context.Context, encoder *json.Encoder, line []byte) error {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		if err := encoder.Encode(newErrorResponse(nil, ErrCodeParseError, err.Error())); err != nil {
			return fmt.Errorf("failed to encode error response: %w", err)
		}
		return nil
	}

	resp := s.Handle(ctx, req)
	if resp == nil {
		return nil
	}
	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// Handle processes one request. A nil response means nothing is written,
// which is how notifications are answered.
func (s *Server) Handle(ctx context.Context, req Request) *Response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return newResponse(req.ID, map[string]any{"tools": toolList()})
	case "tools/call":
		return s.handleToolsCall(ctx, req.ID, req.Params)
	default:
		if strings.HasPrefix(req.Method, "notifications/") {
			return nil
		}
		return newErrorResponse(req.ID, ErrCodeMethodNotFound, fmt.Sprintf("method %s not found", req.Method))
	}
}

func (s *Server) handleInitialize(id json.RawMessage) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": s.info,
	}
	return newResponse(id, result)
}

func (s *Server) handleToolsCall(ctx context.Context, id json.RawMessage, rawParams json.RawMessage) *Response {
	var call callToolParams
	if err := json.Unmarshal(rawParams, &call); err != nil {
		return newErrorResponse(id, ErrCodeInvalidParams, err.Error())
	}

	var out string
	var err error
	switch call.Name {
	case "reddit_search":
		out, err = s.service.Search(ctx, call.Arguments)
	case "reddit_post":
		out, err = s.service.Post(ctx, call.Arguments)
	case "reddit_trending":
		out, err = s.service.Trending(ctx, call.Arguments)
	default:
		return newErrorResponse(id, ErrCodeInvalidParams, fmt.Sprintf("unknown tool %q", call.Name))
	}
	if err != nil {
		s.logger.Debug("rejected tool call", "tool", call.Name, "error", err)
		return newErrorResponse(id, ErrCodeInvalidParams, err.Error())
	}

	result := callToolResult{
		Content: []contentBlock{{Type: "text", Text: out}},
	}
	return newResponse(id, result)
}

func toolList() []Tool {
	styleProps := func(props map[string]Property) map[string]Property {
		props["output"] = Property{
			Type:        "string",
			Description: "Output encoding",
			Enum:        enums.OutputKinds(),
		}
		props["verbosity"] = Property{
			Type:        "string",
			Description: "Rendering detail level",
			Enum:        enums.Verbosities(),
		}
		return props
	}

	return []Tool{
		{
			Name:        "reddit_search",
			Description: "Search Reddit for posts matching a query",
			InputSchema: InputSchema{
				Type: "object",
				Properties: styleProps(map[string]Property{
					"query":     {Type: "string", Description: "Search query terms"},
					"subreddit": {Type: "string", Description: "Optional subreddit to search within"},
					"sort":      {Type: "string", Description: "Result ordering", Enum: enums.SearchSorts()},
					"time":      {Type: "string", Description: "Time window", Enum: enums.TimeWindows()},
					"limit": {Type: "integer", Description: fmt.Sprintf("Maximum results (%d-%d, default %d)",
						params.SearchLimitMin, params.SearchLimitMax, params.SearchLimitDefault)},
				}),
				Required: []string{"query"},
			},
		},
		{
			Name:        "reddit_post",
			Description: "Fetch a Reddit post with its comment tree",
			InputSchema: InputSchema{
				Type: "object",
				Properties: styleProps(map[string]Property{
					"post_id": {Type: "string", Description: "Post id, with or without the t3_ prefix"},
					"comment_limit": {Type: "integer", Description: fmt.Sprintf("Maximum comments (%d-%d, default %d)",
						params.CommentLimitMin, params.CommentLimitMax, params.CommentLimitDefault)},
					"comment_depth": {Type: "integer", Description: fmt.Sprintf("Maximum reply depth (%d-%d, default %d)",
						params.CommentDepthMin, params.CommentDepthMax, params.CommentDepthDefault)},
				}),
				Required: []string{"post_id"},
			},
		},
		{
			Name:        "reddit_trending",
			Description: "Fetch a subreddit's top posts for a time window",
			InputSchema: InputSchema{
				Type: "object",
				Properties: styleProps(map[string]Property{
					"subreddit": {Type: "string", Description: "Subreddit, with or without the r/ prefix"},
					"time":      {Type: "string", Description: "Time window", Enum: enums.TimeWindows()},
					"limit": {Type: "integer", Description: fmt.Sprintf("Maximum results (%d-%d, default %d)",
						params.TrendingLimitMin, params.TrendingLimitMax, params.TrendingLimitDefault)},
				}),
				Required: []string{"subreddit"},
			},
		},
	}
}
