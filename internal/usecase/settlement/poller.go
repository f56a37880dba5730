package settlement

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"beatbox-store/internal/pkg/clock"
	"beatbox-store/internal/pkg/metrics"
	"beatbox-store/internal/pkg/solana"
)

const DefaultInterval = 500 * time.Millisecond

// Outcome is the terminal result of a session. Err is nil when the payment is
// valid and wraps errs.ErrInvalidTransaction otherwise.
type Outcome struct {
	Signature solana.Signature
	Err       error
}

func (o Outcome) Valid() bool { return o.Err == nil }

type Poller struct {
	checker  *Checker
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewPoller(checker *Checker, clk clock.Clock, interval time.Duration, logger *slog.Logger, m *metrics.Metrics) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		checker:  checker,
		clock:    clk,
		interval: interval,
		logger:   logger,
		metrics:  m,
	}
}

// Session is one running poll loop. At most one ledger query is in flight.
type Session struct {
	cancel   context.CancelFunc
	done     chan struct{}
	outcome  chan Outcome
	stopOnce sync.Once
}

// Start begins polling for a transaction carrying exp.Reference. The ticker is
// created before Start returns.
func (p *Poller) Start(ctx context.Context, exp Expectation) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		cancel:  cancel,
		done:    make(chan struct{}),
		outcome: make(chan Outcome, 1),
	}
	ticker := p.clock.NewTicker(p.interval)
	go p.run(ctx, s, ticker, exp)
	return s
}

func (p *Poller) run(ctx context.Context, s *Session, ticker clock.Ticker, exp Expectation) {
	defer close(s.done)
	defer ticker.Stop()

	logger := p.logger.With(slog.String("reference", exp.Reference.String()))
	for {
		select {
		case <-ctx.Done():
			p.metrics.SettlementFinished("stopped")
			return
		case <-ticker.C():
		}

		out, terminal := p.poll(ctx, logger, exp)
		if !terminal {
			continue
		}
		ticker.Stop()
		if out.Valid() {
			logger.Info("payment settled", slog.String("signature", out.Signature.String()))
			p.metrics.SettlementFinished("valid")
		} else {
			logger.Warn("payment rejected", slog.String("signature", out.Signature.String()), slog.Any("error", out.Err))
			p.metrics.SettlementFinished("invalid")
		}
		s.outcome <- out
		return
	}
}

func (p *Poller) poll(ctx context.Context, logger *slog.Logger, exp Expectation) (Outcome, bool) {
	res, err := p.checker.Check(ctx, exp)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("settlement check failed", slog.String("signature", res.Signature.String()), slog.Any("error", err))
		}
		return Outcome{}, false
	}
	switch res.Status {
	case StatusConfirmed:
		return Outcome{Signature: res.Signature}, true
	case StatusInvalid:
		return Outcome{Signature: res.Signature, Err: res.Reason}, true
	default:
		return Outcome{}, false
	}
}

// Outcome delivers exactly one value if the session reaches a terminal result.
func (s *Session) Outcome() <-chan Outcome { return s.outcome }

// Done is closed once the poll loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Stop cancels the session and waits for the loop to exit. No ledger query is
// issued after Stop returns.
func (s *Session) Stop() {
	s.stopOnce.Do(s.cancel)
	<-s.done
}

// Wait blocks until the session reaches a terminal outcome, is stopped, or ctx ends.
func (s *Session) Wait(ctx context.Context) (Outcome, error) {
	select {
	case out := <-s.outcome:
		return out, nil
	case <-s.done:
		select {
		case out := <-s.outcome:
			return out, nil
		default:
			return Outcome{}, context.Canceled
		}
	case <-ctx.Done():
		s.Stop()
		return Outcome{}, ctx.Err()
	}
}
