package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"animal-registry/internal/platform/logger"

	"github.com/m-mizutani/gt"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logger.Level{
		"debug":   logger.Debug,
		" INFO ":  logger.Info,
		"":        logger.Info,
		"warning": logger.Warn,
		"error":   logger.Error,
		"verbose": logger.Info,
	}
	for in, want := range cases {
		gt.Value(t, logger.ParseLevel(in)).Equal(want)
	}
}

func TestLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: logger.Warn, Output: &buf, App: "animals"})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"field": "name"})

	out := buf.String()
	gt.Bool(t, strings.Contains(out, "hidden")).False()
	gt.Bool(t, strings.Contains(out, "msg=shown")).True()
	gt.Bool(t, strings.Contains(out, "app=animals")).True()
	gt.Bool(t, strings.Contains(out, "field=name")).True()
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	l.With(map[string]any{"component": "animals"}).Debug("animal rejected", map[string]any{"reason": "EMPTY_NAME"})

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry)).Required()
	gt.Value(t, entry["msg"]).Equal(any("animal rejected"))
	gt.Value(t, entry["level"]).Equal(any("debug"))
	gt.Value(t, entry["component"]).Equal(any("animals"))
	gt.Value(t, entry["reason"]).Equal(any("EMPTY_NAME"))
}
