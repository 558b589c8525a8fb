package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type syncCounter struct {
	zapcore.Core
	syncs int
}

func (c *syncCounter) Sync() error {
	c.syncs++
	return nil
}

func TestRun_SyncsLoggerOnFailure(t *testing.T) {
	core := &syncCounter{Core: zapcore.NewNopCore()}
	orig := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.New(core), nil }
	t.Cleanup(func() {
		newLogger = orig
		logger = nil
		apiURL = ""
	})
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ENV", "")

	code := run([]string{"--api-url", "not a url"})

	assert.Equal(t, 1, code)
	require.NotNil(t, logger)
	assert.Equal(t, 1, core.syncs)
}
