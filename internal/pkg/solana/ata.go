package solana

import (
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
)

var AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID

const ataCreateIdempotentIndex = 1

// FindAssociatedTokenAddress derives the canonical token account of owner for mint.
func FindAssociatedTokenAddress(owner, mint PublicKey) (PublicKey, error) {
	pk, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	return pk, err
}

// CreateAssociatedTokenAccountIdempotent creates owner's token account for mint, paid
// by payer; a no-op when the account already exists.
func CreateAssociatedTokenAccountIdempotent(payer, owner, mint PublicKey) Instruction {
	create := associatedtokenaccount.NewCreateInstruction(payer, owner, mint).Build()
	return wrap(solana.NewInstruction(
		AssociatedTokenProgramID,
		create.Accounts(),
		[]byte{ataCreateIdempotentIndex},
	))
}
