// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The assist engine in internal/application depends only on these interfaces;
// the SQLite history store, the in-process response cache, the fuzzy ranker and
// the Home Assistant HTTP client in internal/infrastructure are the adapters.
package ports

import (
	"context"

	"github.com/doeshing/ha-assist/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read <config-dir>/ha-assist.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryRepository is the durable, append-only record of successful queries.
// Callers treat every error as "write ignored" or "no results".
type HistoryRepository interface {
	Record(ctx context.Context, query string) error
	Ranked(ctx context.Context) ([]domain.RankedQuery, error)
}

// HistoryAdmin extends HistoryRepository with the administrative operations used by the CLI.
type HistoryAdmin interface {
	HistoryRepository
	Entries(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	ExportJSON(ctx context.Context, dest string) error
	Available() bool
	Path() string
}

// ResponseCache holds the latest reply per query text until it is displayed once.
type ResponseCache interface {
	Put(query string, resp domain.Response)
	Take(query string) (domain.Response, bool)
}

// Ranker scores how well query matches candidate. ok is false when there is no match.
type Ranker interface {
	Score(candidate, query string) (score int, ok bool)
}

// ConversationClient performs the round trip to the remote conversation service.
type ConversationClient interface {
	Process(ctx context.Context, text string) (domain.Response, error)
	Ping(ctx context.Context) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
