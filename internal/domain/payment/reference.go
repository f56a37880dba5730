package payment

import (
	"beatbox-store/internal/pkg/solana"
)

// NewReference returns a fresh random key that tags one checkout on the ledger.
func NewReference() (solana.PublicKey, error) {
	return solana.NewRandomPublicKey()
}
