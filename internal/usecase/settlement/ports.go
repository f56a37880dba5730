package settlement

import (
	"context"

	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"
)

type Ledger interface {
	SignaturesForAddress(ctx context.Context, address solana.PublicKey, q shared.SignatureQuery) ([]shared.SignatureRecord, error)
	// Transaction reports a transaction not yet visible as infra.KindNotFound.
	Transaction(ctx context.Context, sig solana.Signature, commitment shared.Commitment) (*shared.TransactionRecord, error)
	TokenDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)
}
