package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/ha-assist/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(body), 0o600))
	return dir
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)
	t.Setenv("HA_ASSIST_URL", "")
	t.Setenv("HA_ASSIST_TOKEN", "")
	return cacheDir
}

func TestBuildContainerWiresEngine(t *testing.T) {
	cacheDir := isolateEnv(t)
	dir := writeConfig(t, "prefix: \":ask\"\nha_url: http://ha.local:8123\nha_token: abc\n")

	c, err := BuildContainer(context.Background(), Options{ConfigDir: dir, LogOutput: io.Discard})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, ":ask", c.AssistService.Prefix)
	assert.Equal(t, "http://ha.local:8123/api/conversation/process", c.Client.Endpoint())
	assert.True(t, c.HistoryStore.Available())
	assert.Equal(t, filepath.Join(cacheDir, domain.HistoryFileName), c.HistoryStore.Path())
	assert.NotNil(t, c.DoctorService)
}

func TestBuildContainerFailsWithoutConfig(t *testing.T) {
	isolateEnv(t)

	_, err := BuildContainer(context.Background(), Options{ConfigDir: t.TempDir(), LogOutput: io.Discard})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestBuildContainerRejectsInvalidConfig(t *testing.T) {
	isolateEnv(t)
	dir := writeConfig(t, "ha_url: http://ha.local:8123\n")

	_, err := BuildContainer(context.Background(), Options{ConfigDir: dir, LogOutput: io.Discard})
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}
