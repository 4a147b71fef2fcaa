package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"debug":     zerolog.DebugLevel,
		"info":      zerolog.InfoLevel,
		"warn":      zerolog.WarnLevel,
		"warning":   zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"off":       zerolog.Disabled,
		"":          zerolog.WarnLevel,
		"  Debug  ": zerolog.DebugLevel,
		"nonsense":  zerolog.WarnLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TF_LOG_LEVEL", "")
	t.Setenv("TF_LOG_FORMAT", "")
	opt := FromEnv()
	assert.Equal(t, "warn", opt.Level)
	assert.Equal(t, "console", opt.Format)

	t.Setenv("TF_LOG_LEVEL", "DEBUG")
	t.Setenv("TF_LOG_FORMAT", "JSON")
	opt = FromEnv()
	assert.Equal(t, "debug", opt.Level)
	assert.Equal(t, "json", opt.Format)
}

func TestInit_JSONNamed(t *testing.T) {
	t.Setenv("TF_DEBUG", "")
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Writer: &buf})
	t.Cleanup(func() { Init(Options{Level: "off"}) })

	Named("sqlite").Info().Str("path", "tf.db").Msg("opened")
	Get().Debug().Msg("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "opened", entry["message"])
	assert.Equal(t, "sqlite", entry["component"])
	assert.Equal(t, "tf.db", entry["path"])
	assert.Equal(t, "info", entry["level"])
}

func TestInit_Console(t *testing.T) {
	t.Setenv("TF_DEBUG", "")
	var buf bytes.Buffer
	Init(Options{Level: "warn", Format: "console", Writer: &buf})
	t.Cleanup(func() { Init(Options{Level: "off"}) })

	Named("").Warn().Msg("careful")
	Get().Info().Msg("quiet")

	out := buf.String()
	assert.Contains(t, out, "careful")
	assert.NotContains(t, out, "quiet")
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TF_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TF_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestDebug_ForcedByEnv(t *testing.T) {
	t.Setenv("TF_DEBUG", "1")
	var buf bytes.Buffer
	Init(Options{Level: "error", Format: "json", Writer: &buf})
	t.Cleanup(func() { Init(Options{Level: "off"}) })

	Debugf("resolved %s", "T+1")
	Debugln("range", 2)

	out := buf.String()
	assert.Contains(t, out, "resolved T+1")
	assert.Contains(t, out, "range 2")
}
