package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/ha-assist/internal/ports"
)

var (
	_ ports.Logger = (*StdLogger)(nil)
	_ ports.Logger = Nop{}
)

func TestNewSuppressesDebugUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]interface{}{"b": 2, "a": 1})
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown a=1 b=2")

	buf.Reset()
	New(&buf, true).Debug("visible", nil)
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Error("request failed", errors.New("boom"), map[string]interface{}{"query": "lights"})
	assert.Contains(t, buf.String(), "msg=\"request failed\" query=lights error=boom")
}

func TestNewStdBuildsLogger(t *testing.T) {
	log := NewStd(true)
	require.NotNil(t, log)
	log.Debug("stderr logger ready", nil)
}
