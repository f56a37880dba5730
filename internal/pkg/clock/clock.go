package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	tickers     []*MockTicker
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// NewTicker returns a ticker that only fires when the test calls Tick.
func (c *MockClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &MockTicker{clock: c, interval: d, ch: make(chan time.Time), done: make(chan struct{})}
	c.tickers = append(c.tickers, t)
	return t
}

// Tickers returns every ticker created so far, oldest first.
func (c *MockClock) Tickers() []*MockTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*MockTicker(nil), c.tickers...)
}

type MockTicker struct {
	clock    *MockClock
	interval time.Duration
	ch       chan time.Time
	done     chan struct{}
	stopOnce sync.Once
}

func (t *MockTicker) C() <-chan time.Time { return t.ch }

func (t *MockTicker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// Tick advances the clock by one interval and blocks until the receiver takes
// the tick. It returns false once the ticker has been stopped.
func (t *MockTicker) Tick() bool {
	select {
	case <-t.done:
		return false
	default:
	}
	t.clock.Add(t.interval)
	now := t.clock.Now()
	select {
	case t.ch <- now:
		return true
	case <-t.done:
		return false
	}
}

func (t *MockTicker) Stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
