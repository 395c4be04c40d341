package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextTimeout(t *testing.T) {
	ctx, stop := Context(context.Background(), 20*time.Millisecond, syscall.SIGUSR1)
	defer stop()

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by its deadline")
	}
}

func TestContextSignal(t *testing.T) {
	ctx, stop := Context(context.Background(), 0, syscall.SIGUSR1)
	defer stop()

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by the signal")
	}
}

func TestStopReleasesContext(t *testing.T) {
	ctx, stop := Context(context.Background(), time.Minute, syscall.SIGUSR1)
	stop()

	<-ctx.Done()
	assert.Error(t, ctx.Err())
}
