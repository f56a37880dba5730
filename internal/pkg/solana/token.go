package solana

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

var TokenProgramID = solana.TokenProgramID

const tokenAccountSize = 165

var (
	ErrNotTokenTransfer   = errors.New("instruction is not a token transfer")
	ErrInvalidTokenLayout = errors.New("account data is not a token account")
)

// TransferChecked moves amount base-units of mint from source to destination token
// accounts; the program rejects it unless decimals matches the mint.
func TransferChecked(source, mint, destination, owner PublicKey, amount uint64, decimals uint8) Instruction {
	return wrap(token.NewTransferCheckedInstruction(amount, decimals, source, mint, destination, owner, nil).Build())
}

type TokenTransferParams struct {
	Source      PublicKey
	Destination PublicKey
	Owner       PublicKey
	Amount      uint64
	// Mint and Decimals are only known for TransferChecked.
	Mint     *PublicKey
	Decimals *uint8
}

// DecodeTokenTransfer understands both Transfer and TransferChecked.
func DecodeTokenTransfer(ix Instruction) (TokenTransferParams, error) {
	if ix.Instruction == nil || !ix.ProgramID().Equals(TokenProgramID) {
		return TokenTransferParams{}, ErrNotTokenTransfer
	}
	accounts := ix.Accounts()
	data, err := ix.bytes()
	if err != nil || len(data) == 0 {
		return TokenTransferParams{}, ErrNotTokenTransfer
	}
	decoded, err := token.DecodeInstruction(accounts, data)
	if err != nil {
		return TokenTransferParams{}, ErrNotTokenTransfer
	}
	switch impl := decoded.Impl.(type) {
	case *token.Transfer:
		if impl.Amount == nil || len(accounts) < 3 {
			return TokenTransferParams{}, ErrNotTokenTransfer
		}
		return TokenTransferParams{
			Source:      impl.GetSourceAccount().PublicKey,
			Destination: impl.GetDestinationAccount().PublicKey,
			Owner:       impl.GetOwnerAccount().PublicKey,
			Amount:      *impl.Amount,
		}, nil
	case *token.TransferChecked:
		if impl.Amount == nil || impl.Decimals == nil || len(accounts) < 4 {
			return TokenTransferParams{}, ErrNotTokenTransfer
		}
		mint := impl.GetMintAccount().PublicKey
		decimals := *impl.Decimals
		return TokenTransferParams{
			Source:      impl.GetSourceAccount().PublicKey,
			Mint:        &mint,
			Destination: impl.GetDestinationAccount().PublicKey,
			Owner:       impl.GetOwnerAccount().PublicKey,
			Amount:      *impl.Amount,
			Decimals:    &decimals,
		}, nil
	default:
		return TokenTransferParams{}, ErrNotTokenTransfer
	}
}

type TokenAccount struct {
	Mint   PublicKey
	Owner  PublicKey
	Amount uint64
}

func DecodeTokenAccount(data []byte) (TokenAccount, error) {
	if len(data) < tokenAccountSize {
		return TokenAccount{}, ErrInvalidTokenLayout
	}
	var acc token.Account
	if err := bin.NewBinDecoder(data).Decode(&acc); err != nil {
		return TokenAccount{}, ErrInvalidTokenLayout
	}
	return TokenAccount{Mint: acc.Mint, Owner: acc.Owner, Amount: acc.Amount}, nil
}
