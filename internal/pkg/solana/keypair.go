package solana

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

var ErrInvalidSecretKey = errors.New("invalid secret key")

// Keypair holds a 64-byte ed25519 secret key (seed followed by public key),
// the same layout solana-keygen writes.
type Keypair struct {
	secret solana.PrivateKey
}

func NewKeypair() (*Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	return &Keypair{secret: priv}, nil
}

// KeypairFromBase58 decodes a base58 secret key as exported by browser wallets.
func KeypairFromBase58(s string) (*Keypair, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidSecretKey
	}
	priv, err := solana.PrivateKeyFromBase58(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}
	return &Keypair{secret: priv}, nil
}

// KeypairFromJSON decodes the JSON byte array format of solana-keygen key files.
func KeypairFromJSON(data []byte) (*Keypair, error) {
	priv, err := solana.PrivateKeyFromSolanaKeygenFileBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}
	return &Keypair{secret: priv}, nil
}

func (k *Keypair) PublicKey() PublicKey {
	return k.secret.PublicKey()
}

func (k *Keypair) Sign(message []byte) (Signature, error) {
	return k.secret.Sign(message)
}

func (k *Keypair) Base58() string {
	return k.secret.String()
}

// SecretKey returns a copy of the 64-byte secret key.
func (k *Keypair) SecretKey() []byte {
	return append([]byte(nil), k.secret...)
}

func (k *Keypair) privateKey() *solana.PrivateKey {
	return &k.secret
}
