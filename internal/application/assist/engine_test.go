package assist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/ha-assist/internal/application/assist"
	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/infrastructure/cache"
	"github.com/doeshing/ha-assist/internal/infrastructure/conversation"
	"github.com/doeshing/ha-assist/internal/infrastructure/fuzzy"
	"github.com/doeshing/ha-assist/internal/infrastructure/history"
	"github.com/doeshing/ha-assist/internal/pkg/logger"
)

type engine struct {
	svc   *assist.Service
	store *history.SQLiteStore
	cache *cache.ResponseCache
}

// newEngine wires the real adapters against a temp database and a fake
// conversation endpoint that answers every request with reply.
func newEngine(t *testing.T, reply map[string]interface{}) *engine {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(server.Close)

	cfg := domain.Config{Prefix: ":ha", Language: "en", URL: server.URL, Token: "secret"}
	client, err := conversation.NewClient(cfg, server.Client())
	require.NoError(t, err)

	store := history.NewSQLiteStore(filepath.Join(t.TempDir(), "history.sqlite3"), logger.Nop{})
	t.Cleanup(func() { _ = store.Close() })
	require.True(t, store.Available())

	responses := cache.NewResponseCache()
	return &engine{
		svc: &assist.Service{
			Prefix:  cfg.PrefixOrDefault(),
			History: store,
			Cache:   responses,
			Ranker:  fuzzy.NewRanker(),
			Client:  client,
			Logger:  logger.Nop{},
		},
		store: store,
		cache: responses,
	}
}

func actionDone(speech string) map[string]interface{} {
	return map[string]interface{}{
		"response": map[string]interface{}{
			"response_type": "action_done",
			"speech": map[string]interface{}{
				"plain": map[string]interface{}{"speech": speech},
			},
		},
	}
}

func TestEngineConfirmThenMatchRoundTrip(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, actionDone("Done"))

	first := e.svc.Match(ctx, ":ha turn on lights")
	require.Len(t, first, 1)
	assert.Equal(t, "turn on lights", first[0].Title)
	assert.Empty(t, first[0].Description)
	assert.Empty(t, first[0].Icon)
	assert.False(t, first[0].UsePango)

	result := e.svc.Confirm(ctx, first[0].Title)
	assert.True(t, result.Refresh)

	count, err := e.store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, 1, e.cache.Len())

	decorated := e.svc.Match(ctx, ":ha turn on lights")
	require.NotEmpty(t, decorated)
	assert.Equal(t, "turn on lights", decorated[0].Title)
	assert.Equal(t, "Done", decorated[0].Description)
	assert.Equal(t, domain.IconSuccess, decorated[0].Icon)

	again := e.svc.Match(ctx, ":ha turn on lights")
	require.NotEmpty(t, again)
	assert.Equal(t, "turn on lights", again[0].Title)
	assert.Empty(t, again[0].Description)
	assert.Empty(t, again[0].Icon)
}

func TestEngineSuggestsHistoryForPartialInput(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, actionDone("Done"))

	e.svc.Confirm(ctx, "turn on lights")
	e.svc.Confirm(ctx, "turn on lights")
	e.svc.Confirm(ctx, "open the garage")

	got := e.svc.Match(ctx, ":ha lights")
	require.Len(t, got, 2)
	assert.Equal(t, "lights", got[0].Title)
	assert.Equal(t, "turn on lights", got[1].Title)
	assert.Equal(t, "Done", got[1].Description, "history candidates are decorated too")
}

func TestEngineSuggestsLongHistoryForShortQuery(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, actionDone("Set"))

	e.svc.Confirm(ctx, "set the bedroom thermostat to 21 degrees")
	e.cache.Take("set the bedroom thermostat to 21 degrees")

	got := e.svc.Match(ctx, ":ha therm")
	require.Len(t, got, 2)
	assert.Equal(t, "therm", got[0].Title)
	assert.Equal(t, "set the bedroom thermostat to 21 degrees", got[1].Title)
}

func TestEngineEmptyAndUnprefixedInput(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, actionDone("Done"))
	e.svc.Confirm(ctx, "turn on lights")

	assert.Empty(t, e.svc.Match(ctx, ":ha "))
	assert.Empty(t, e.svc.Match(ctx, "turn on lights"))
}

func TestEngineErrorReplyIsShownButNotRemembered(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, map[string]interface{}{
		"response": map[string]interface{}{
			"response_type": "error",
			"speech": map[string]interface{}{
				"plain": map[string]interface{}{"speech": "Sorry, I couldn't understand that"},
			},
		},
	})

	e.svc.Confirm(ctx, "fly to the moon")

	count, err := e.store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	got := e.svc.Match(ctx, ":ha fly to the moon")
	require.Len(t, got, 1)
	assert.Equal(t, domain.IconError, got[0].Icon)
	assert.Equal(t, "Sorry, I couldn't understand that", got[0].Description)
}

func TestEngineMalformedReplyChangesNothing(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, map[string]interface{}{"unexpected": true})

	e.svc.Confirm(ctx, "turn on lights")

	count, err := e.store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, e.cache.Len())
}
