//go:build unix

package server

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSignal(t *testing.T) {
	t.Run("Canceled On SIGTERM", func(t *testing.T) {
		ctx, stop := WithSignal(context.Background())
		defer stop()

		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("context not canceled after SIGTERM")
		}
	})

	t.Run("Follows Parent", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := WithSignal(parent)
		defer stop()

		assert.NoError(t, ctx.Err())
		cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
