package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("success - stops when the context is done", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: \"0\"\nlog_level: error\n"), 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- run(ctx, path) }()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("error - config is returned instead of exiting", func(t *testing.T) {
		err := run(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("error - unreachable history is returned", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("history:\n  redis_addr: \"127.0.0.1:1\"\n"), 0o644))

		err := run(context.Background(), path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening delivery history")
	})
}
