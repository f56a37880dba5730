package checkout

import (
	"context"
	"log/slog"

	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Built is a partially signed transaction ready for the buyer.
type Built struct {
	Transaction *solana.Transaction
	Encoded     string
	Plan        *Plan
}

type Builder struct {
	ledger Ledger
	logger *slog.Logger
}

func NewBuilder(ledger Ledger, logger *slog.Logger) *Builder {
	return &Builder{ledger: ledger, logger: logger}
}

// Build validates the request, then assembles, signs and serializes the
// transaction. Nothing is returned unless every step succeeds.
func (b *Builder) Build(ctx context.Context, strategy Strategy, p BuildParams) (*Built, error) {
	switch {
	case p.Amount.Sign() <= 0:
		return nil, errs.ErrZeroCharge
	case p.Reference.IsZero():
		return nil, errs.ErrMissingReference
	case p.Buyer.IsZero():
		return nil, errs.ErrMissingAccount
	}

	var (
		blockhash shared.Blockhash
		plan      *Plan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bh, err := b.ledger.LatestBlockhash(gctx, shared.CommitmentFinalized)
		if err != nil {
			return errs.Wrap(err, "failed to fetch latest blockhash")
		}
		blockhash = bh
		return nil
	})
	g.Go(func() error {
		pl, err := strategy.Plan(gctx, p)
		if err != nil {
			return err
		}
		plan = pl
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(p.Buyer, blockhash.Hash, plan.Instructions...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to compile transaction")
	}
	if len(plan.Signers) > 0 {
		if err := solana.PartialSign(tx, plan.Signers...); err != nil {
			return nil, errs.Wrap(err, "failed to sign transaction")
		}
	}
	encoded, err := solana.EncodeBase64(tx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to serialize transaction")
	}

	b.logger.Debug("transaction built",
		slog.String("mode", strategy.Mode().String()),
		slog.String("buyer", p.Buyer.String()),
		slog.String("reference", p.Reference.String()),
		slog.String("amount", plan.Amount.String()),
		slog.Int("instructions", len(plan.Instructions)),
		slog.Int("missing_signatures", len(solana.MissingSigners(tx))),
	)
	return &Built{Transaction: tx, Encoded: encoded, Plan: plan}, nil
}
