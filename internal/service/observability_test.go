package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf).Level(zerolog.DebugLevel))

	done := track(context.Background(), obs, "plan-today", map[string]any{"entries": 4})
	done(nil)

	out := buf.String()
	assert.Contains(t, out, `"use_case":"plan-today"`)
	assert.Contains(t, out, `"success":true`)
	assert.Contains(t, out, `"entries":4`)
	assert.Contains(t, out, `"component":"service"`)
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf).Level(zerolog.InfoLevel))

	track(context.Background(), obs, "complete-session", nil)(errors.New("boom"))

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := MultiObserver(a, nil, b)

	track(context.Background(), obs, "create-task", nil)(nil)

	assert.Equal(t, "create-task", a.last(t).Name)
	assert.Equal(t, "create-task", b.last(t).Name)
}

func TestMultiObserver_EmptyIsNoop(t *testing.T) {
	obs := MultiObserver()
	require.NotPanics(t, func() {
		track(context.Background(), obs, "noop", nil)(nil)
	})
	_, ok := obs.(NoopUseCaseObserver)
	assert.True(t, ok)
}
