package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/ha-assist/internal/domain"
)

// setup writes a config pointing at a fake Home Assistant that answers every
// query with "Done", and isolates the history database in a temp dir.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HA_ASSIST_URL", "")
	t.Setenv("HA_ASSIST_TOKEN", "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == domain.APIStatusPath {
			_, _ = w.Write([]byte(`{"message":"API running."}`))
			return
		}
		_, _ = w.Write([]byte(`{"response":{"response_type":"action_done","speech":{"plain":{"speech":"Done"}}}}`))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	body := fmt.Sprintf("ha_url: %s\nha_token: secret\n", server.URL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(body), 0o600))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root, env := NewRootCmd(Options{})
	t.Cleanup(func() { _ = env.Close() })

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConfirmThenHistory(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "", "--config-dir", dir, "confirm", "turn", "on", "lights")
	require.NoError(t, err)
	assert.Equal(t, "[action_done] Done\n", out)

	out, err = run(t, "", "--config-dir", dir, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "turn on lights")

	out, err = run(t, "", "--config-dir", dir, "match", "--json", ":ha lights")
	require.NoError(t, err)
	var candidates []domain.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &candidates))
	require.Len(t, candidates, 2)
	assert.Equal(t, "lights", candidates[0].Title)
	assert.Equal(t, "turn on lights", candidates[1].Title)
}

func TestServeKeepsCacheBetweenRequests(t *testing.T) {
	dir := setup(t)
	stdin := strings.Join([]string{
		`{"type":"confirm","title":"open garage"}`,
		`{"type":"match","input":":ha open garage"}`,
	}, "\n")

	out, err := run(t, stdin, "--config-dir", dir, "serve")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"refresh":true}`, lines[0])

	var resp struct {
		Matches []domain.Candidate `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &resp))
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, "Done", resp.Matches[0].Description)
	assert.Equal(t, domain.IconSuccess, resp.Matches[0].Icon)
}

func TestMatchWithoutConfigFails(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	_, err := run(t, "", "--config-dir", t.TempDir(), "match", ":ha x")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, domain.ConfigFileName))
	assert.FileExists(t, filepath.Join(dir, domain.ConfigFileName))

	_, err = run(t, "", "--config-dir", dir, "init")
	assert.Error(t, err, "existing config is kept without --force")
}

func TestDoctorReportsHealthySetup(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "", "--config-dir", dir, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Config file")
	assert.Contains(t, out, "[OK] History store")
	assert.Contains(t, out, "[OK] Home Assistant API")
}

func TestInfoAndVersion(t *testing.T) {
	out, err := run(t, "", "info", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"HA Assist","icon":"go-home"}`, out)

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ha-assist version")
}

func TestConfigShowRedactsToken(t *testing.T) {
	dir := setup(t)

	out, err := run(t, "", "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "ha_token: <redacted>")
	assert.NotContains(t, out, "secret")

	out, err = run(t, "", "--config-dir", dir, "config", "diff")
	require.NoError(t, err)
	assert.Contains(t, out, "URL")

	out, err = run(t, "", "--config-dir", dir, "config", "validate")
	require.NoError(t, err)
	assert.Equal(t, "Configuration valid\n", out)
}
