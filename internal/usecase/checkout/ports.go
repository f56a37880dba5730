package checkout

import (
	"context"

	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"
)

// Ledger is the read side of the node the builder needs.
type Ledger interface {
	LatestBlockhash(ctx context.Context, commitment shared.Commitment) (shared.Blockhash, error)
	TokenDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)
	// TokenBalance reports a missing account as infra.KindNotFound.
	TokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
}
