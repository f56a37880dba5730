package solana

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

type (
	// PublicKey is a 32-byte account address rendered as base58.
	PublicKey = solana.PublicKey
	// Hash is a 32-byte ledger hash, used for the recent blockhash.
	Hash = solana.Hash
	// Signature is an ed25519 signature; the first signature of a transaction is its id.
	Signature = solana.Signature
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidHash      = errors.New("invalid hash")
)

func ParsePublicKey(s string) (PublicKey, error) {
	if s == "" {
		return PublicKey{}, ErrInvalidPublicKey
	}
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pk, nil
}

// MustPublicKey panics on malformed input. Intended for constants.
func MustPublicKey(s string) PublicKey {
	return solana.MustPublicKeyFromBase58(s)
}

// NewRandomPublicKey returns the public half of a freshly generated keypair.
// The private half is discarded.
func NewRandomPublicKey() (PublicKey, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return PublicKey{}, err
	}
	return priv.PublicKey(), nil
}

func ParseHash(s string) (Hash, error) {
	h, err := solana.HashFromBase58(strings.TrimSpace(s))
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return h, nil
}

func ParseSignature(s string) (Signature, error) {
	sig, err := solana.SignatureFromBase58(strings.TrimSpace(s))
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return sig, nil
}

// Verify reports whether sig is pk's signature over message.
func Verify(pk PublicKey, message []byte, sig Signature) bool {
	return pk.Verify(message, sig)
}
