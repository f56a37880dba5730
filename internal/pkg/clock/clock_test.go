//go:build unit

package clock_test

import (
	"testing"
	"time"

	"beatbox-store/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTicker(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)
	ticker := c.NewTicker(500 * time.Millisecond)
	require.Len(t, c.Tickers(), 1)

	received := make(chan time.Time, 1)
	go func() { received <- <-ticker.C() }()

	assert.True(t, c.Tickers()[0].Tick())
	assert.Equal(t, start.Add(500*time.Millisecond), <-received)

	ticker.Stop()
	ticker.Stop()
	assert.True(t, c.Tickers()[0].Stopped())
	assert.False(t, c.Tickers()[0].Tick())
}

func TestRealTickerFires(t *testing.T) {
	ticker := clock.NewRealClock().NewTicker(time.Millisecond)
	defer ticker.Stop()
	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}
}
