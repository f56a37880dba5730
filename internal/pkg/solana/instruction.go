package solana

import (
	"github.com/gagliardetto/solana-go"
)

type AccountMeta = solana.AccountMeta

// Meta returns a readonly, non-signing account reference to pk.
func Meta(pk PublicKey) *AccountMeta {
	return solana.Meta(pk)
}

// Instruction wraps a program call built with the solana-go program packages.
type Instruction struct {
	solana.Instruction
	tagged []*AccountMeta
}

func wrap(ix solana.Instruction) Instruction {
	return Instruction{Instruction: ix}
}

func (ix Instruction) Accounts() []*AccountMeta {
	if len(ix.tagged) == 0 {
		return ix.Instruction.Accounts()
	}
	inner := ix.Instruction.Accounts()
	out := make([]*AccountMeta, 0, len(inner)+len(ix.tagged))
	out = append(out, inner...)
	return append(out, ix.tagged...)
}

// WithReadonlyKey appends a non-signing, non-writable account. Programs ignore
// trailing accounts they do not expect, which makes this the standard way to tag
// a transaction with a searchable key.
func (ix Instruction) WithReadonlyKey(pk PublicKey) Instruction {
	tagged := make([]*AccountMeta, len(ix.tagged), len(ix.tagged)+1)
	copy(tagged, ix.tagged)
	ix.tagged = append(tagged, Meta(pk))
	return ix
}

func (ix Instruction) HasAccount(pk PublicKey) bool {
	for _, a := range ix.Accounts() {
		if a != nil && a.PublicKey.Equals(pk) {
			return true
		}
	}
	return false
}

func (ix Instruction) bytes() ([]byte, error) {
	if ix.Instruction == nil {
		return nil, nil
	}
	return ix.Instruction.Data()
}
