package rate

import (
	"context"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

// TestNewPacer_Unpaced verifies a zero rate never blocks.
func TestNewPacer_Unpaced(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPacer(ctx, 0)
	require.Zero(t, p.Limit())

	start := time.Now()
	for i := 0; i < 1000; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

// TestPacer_Wait_ReceivesPermits verifies a paced Pacer eventually grants permits.
func TestPacer_Wait_ReceivesPermits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPacer(ctx, 100)
	require.Equal(t, 100, p.Limit())

	done := make(chan error, 1)
	go func() {
		done <- p.Wait(ctx)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Wait should not block forever")
	}
}

// TestPacer_Wait_LimitsRate verifies permits are spread over time.
func TestPacer_Wait_LimitsRate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPacer(ctx, 50) // one permit per 20ms

	start := time.Now()
	for i := 0; i < 6; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	require.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

// TestPacer_Wait_StopsOnContextCancel verifies Wait returns the context error after cancel.
func TestPacer_Wait_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := NewPacer(ctx, 1)
	cancel()

	require.ErrorIs(t, p.Wait(ctx), context.Canceled)
}
