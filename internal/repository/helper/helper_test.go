package helper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonblockingWrite_Delivers(t *testing.T) {
	ch := make(chan int, 1)

	require.NoError(t, NonblockingWrite[int](context.Background(), time.Second, ch, 7))
	assert.Equal(t, 7, <-ch)
}

func TestNonblockingWrite_TimesOutWithoutReader(t *testing.T) {
	ch := make(chan string)

	err := NonblockingWrite[string](context.Background(), 10*time.Millisecond, ch, "lost")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNonblockingWrite_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NonblockingWrite[int](ctx, time.Minute, make(chan int), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
