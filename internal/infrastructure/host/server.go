// Package host implements the line-delimited JSON protocol a launcher uses to
// drive the assist engine over stdin/stdout.
package host

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

const maxLineSize = 1 << 20

// Engine is the part of the assist service the host protocol drives.
type Engine interface {
	Match(ctx context.Context, input string) []domain.Candidate
	Confirm(ctx context.Context, title string) domain.ConfirmResult
}

// Server answers one response line per request line. Requests are handled in
// order, so engine calls never overlap.
type Server struct {
	engine Engine
	log    ports.Logger
}

// NewServer builds a server around engine.
func NewServer(engine Engine, log ports.Logger) *Server {
	return &Server{engine: engine, log: log}
}

// Serve reads requests from r until EOF or ctx is cancelled. Blank lines are
// skipped. It returns the first read or write error.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		s.log.Debug("request", map[string]interface{}{"data": string(raw)})

		data, err := json.Marshal(s.Handle(ctx, raw))
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		s.log.Debug("response", map[string]interface{}{"data": string(data)})

		if _, err := out.Write(append(data, '\n')); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Handle decodes and dispatches a single request line.
func (s *Server) Handle(ctx context.Context, raw []byte) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		s.log.Warn("invalid request", map[string]interface{}{"error": err.Error()})
		return errorResponse(CodeInvalidRequest, err.Error())
	}

	switch req.Type {
	case TypeMatch:
		matches := s.engine.Match(ctx, req.Input)
		if matches == nil {
			matches = []domain.Candidate{}
		}
		return Response{Matches: &matches}
	case TypeConfirm:
		if req.Title == "" {
			return errorResponse(CodeInvalidRequest, "title is required")
		}
		refresh := s.engine.Confirm(ctx, req.Title).Refresh
		return Response{Refresh: &refresh}
	case TypeInfo:
		info := domain.Info()
		return Response{Name: info.Name, Icon: info.Icon}
	default:
		return errorResponse(CodeUnknownType, fmt.Sprintf("unknown request type %q", req.Type))
	}
}

func errorResponse(code, message string) Response {
	return Response{Error: &Error{Code: code, Message: message}}
}
