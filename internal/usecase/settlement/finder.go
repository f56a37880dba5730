package settlement

import (
	"context"

	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"
)

// PageLimit is the largest page getSignaturesForAddress returns.
const PageLimit = 1000

type Finder struct {
	ledger     Ledger
	commitment shared.Commitment
}

func NewFinder(ledger Ledger, commitment shared.Commitment) *Finder {
	return &Finder{ledger: ledger, commitment: commitment}
}

// FindOldest returns the earliest transaction that mentions reference, preferring
// the earliest one that did not fail. It returns errs.ErrSignatureNotFound when
// the reference has no history yet.
func (f *Finder) FindOldest(ctx context.Context, reference solana.PublicKey) (shared.SignatureRecord, error) {
	var (
		before       *solana.Signature
		oldest       *shared.SignatureRecord
		oldestLanded *shared.SignatureRecord
	)
	for {
		page, err := f.ledger.SignaturesForAddress(ctx, reference, shared.SignatureQuery{
			Before:     before,
			Limit:      PageLimit,
			Commitment: f.commitment,
		})
		if err != nil {
			return shared.SignatureRecord{}, errs.Wrap(err, "failed to list signatures for reference")
		}
		// Pages are newest first, and each page is older than the previous one.
		for i := range page {
			rec := page[i]
			oldest = &rec
			if !rec.Failed {
				oldestLanded = &rec
			}
		}
		if len(page) < PageLimit {
			break
		}
		before = &page[len(page)-1].Signature
	}

	switch {
	case oldestLanded != nil:
		return *oldestLanded, nil
	case oldest != nil:
		return *oldest, nil
	default:
		return shared.SignatureRecord{}, errs.ErrSignatureNotFound
	}
}
