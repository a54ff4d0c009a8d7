// Package assist turns launcher input into ranked candidates and handles
// confirmed selections against the conversation service.
package assist

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

// Service is the engine state shared by every host invocation. The response
// cache and the history store are its only mutable parts.
type Service struct {
	Prefix  string
	History ports.HistoryRepository
	Cache   ports.ResponseCache
	Ranker  ports.Ranker
	Client  ports.ConversationClient
	Logger  ports.Logger
}

type scoredQuery struct {
	query string
	score int
}

// Match returns the candidates for raw launcher input: the input itself first,
// then historical queries by descending fuzzy score. Input that does not start
// with the prefix, or is empty once the prefix is stripped, yields nothing.
func (s *Service) Match(ctx context.Context, input string) []domain.Candidate {
	rest, ok := strings.CutPrefix(input, s.Prefix)
	if !ok {
		return nil
	}
	query := strings.TrimSpace(rest)
	if query == "" {
		return nil
	}

	candidates := []domain.Candidate{s.candidateFor(query)}
	for _, sq := range s.rankHistory(ctx, query) {
		candidates = append(candidates, s.candidateFor(sq.query))
	}
	return candidates
}

// rankHistory scores every distinct historical query against query. Ties keep
// the store's frequency order.
func (s *Service) rankHistory(ctx context.Context, query string) []scoredQuery {
	if s.History == nil {
		return nil
	}
	ranked, err := s.History.Ranked(ctx)
	if err != nil {
		s.Logger.Debug("history unavailable for ranking", map[string]interface{}{"error": err.Error()})
		return nil
	}

	scored := make([]scoredQuery, 0, len(ranked))
	for _, rq := range ranked {
		score, ok := s.Ranker.Score(rq.Query, query)
		if !ok || score <= 0 {
			continue
		}
		scored = append(scored, scoredQuery{query: rq.Query, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

// candidateFor builds the candidate for title and consumes any cached reply for it.
func (s *Service) candidateFor(title string) domain.Candidate {
	candidate := domain.NewCandidate(title)
	if resp, ok := s.Cache.Take(title); ok {
		candidate = candidate.Decorate(resp)
	}
	return candidate
}

// Confirm sends title to the conversation service. A parsed reply is cached for
// the next Match; only successful replies are written to history. Failures are
// logged and leave all state untouched. The host is always asked to refresh.
func (s *Service) Confirm(ctx context.Context, title string) domain.ConfirmResult {
	fields := map[string]interface{}{
		"request_id": uuid.NewString(),
		"query":      title,
	}

	resp, err := s.Client.Process(ctx, title)
	if err != nil {
		s.Logger.Error("assist request failed", err, fields)
		return domain.ConfirmResult{Refresh: true}
	}
	fields["response_type"] = resp.Kind.String()

	switch resp.Kind {
	case domain.ResponseError:
		s.Logger.Info("assist reported an error", fields)
	case domain.ResponseActionDone, domain.ResponseQueryAnswer:
		if s.History != nil {
			if err := s.History.Record(ctx, title); err != nil {
				s.Logger.Warn("history write ignored", map[string]interface{}{"query": title, "error": err.Error()})
			}
		}
		s.Logger.Debug("assist request succeeded", fields)
	}

	s.Cache.Put(title, resp)
	return domain.ConfirmResult{Refresh: true}
}
