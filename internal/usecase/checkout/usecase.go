package checkout

import (
	"context"
	"log/slog"
	"strings"

	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/metrics"
	"beatbox-store/internal/pkg/solana"

	"github.com/shopspring/decimal"
)

// Request carries the raw checkout inputs; the query holds product quantities.
type Request struct {
	Account   string
	Reference string
	Query     map[string][]string
}

type Result struct {
	Transaction string
	Message     string
	Amount      decimal.Decimal
	Mode        payment.Mode
}

type UseCase interface {
	MakeTransaction(ctx context.Context, req Request) (*Result, error)
	Mode() payment.Mode
}

type useCaseImpl struct {
	calculator catalog.PriceCalculator
	builder    *Builder
	strategy   Strategy
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewUseCase(calculator catalog.PriceCalculator, builder *Builder, strategy Strategy, logger *slog.Logger, m *metrics.Metrics) UseCase {
	return &useCaseImpl{
		calculator: calculator,
		builder:    builder,
		strategy:   strategy,
		logger:     logger,
		metrics:    m,
	}
}

func (u *useCaseImpl) Mode() payment.Mode { return u.strategy.Mode() }

// MakeTransaction checks inputs in a fixed order: charge, reference, then account.
func (u *useCaseImpl) MakeTransaction(ctx context.Context, req Request) (*Result, error) {
	res, err := u.makeTransaction(ctx, req)
	u.metrics.CheckoutBuilt(u.strategy.Mode().String(), checkoutOutcome(err))
	return res, err
}

func (u *useCaseImpl) makeTransaction(ctx context.Context, req Request) (*Result, error) {
	amount := u.calculator.Calculate(req.Query, u.strategy.Mode().Currency())
	if amount.IsZero() {
		return nil, errs.ErrZeroCharge
	}

	reference, err := parseKey(req.Reference, errs.ErrMissingReference, errs.ErrInvalidReference)
	if err != nil {
		return nil, err
	}
	buyer, err := parseKey(req.Account, errs.ErrMissingAccount, errs.ErrInvalidAccount)
	if err != nil {
		return nil, err
	}

	built, err := u.builder.Build(ctx, u.strategy, BuildParams{Buyer: buyer, Reference: reference, Amount: amount})
	if err != nil {
		if !isClientError(err) {
			u.logger.Error("failed to build checkout transaction",
				slog.String("mode", u.strategy.Mode().String()),
				slog.String("reference", reference.String()),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	return &Result{
		Transaction: built.Encoded,
		Message:     built.Plan.Message,
		Amount:      built.Plan.Amount,
		Mode:        u.strategy.Mode(),
	}, nil
}

func parseKey(s string, missing, invalid error) (solana.PublicKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return solana.PublicKey{}, missing
	}
	pk, err := solana.ParsePublicKey(s)
	if err != nil {
		return solana.PublicKey{}, errs.Mark(err, invalid)
	}
	return pk, nil
}

func isClientError(err error) bool {
	for _, target := range []error{
		errs.ErrZeroCharge, errs.ErrMissingReference, errs.ErrMissingAccount,
		errs.ErrInvalidReference, errs.ErrInvalidAccount, errs.ErrIndivisibleDiscount,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}

func checkoutOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isClientError(err):
		return "rejected"
	default:
		return "error"
	}
}
