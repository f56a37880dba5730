package solana

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

const LamportsPerSOL = solana.LAMPORTS_PER_SOL

var SystemProgramID = solana.SystemProgramID

var ErrNotSystemTransfer = errors.New("instruction is not a system transfer")

// SystemTransfer moves lamports between two system-owned accounts.
func SystemTransfer(from, to PublicKey, lamports uint64) Instruction {
	return wrap(system.NewTransferInstruction(lamports, from, to).Build())
}

type SystemTransferParams struct {
	From     PublicKey
	To       PublicKey
	Lamports uint64
}

func DecodeSystemTransfer(ix Instruction) (SystemTransferParams, error) {
	if ix.Instruction == nil || !ix.ProgramID().Equals(SystemProgramID) {
		return SystemTransferParams{}, ErrNotSystemTransfer
	}
	accounts := ix.Accounts()
	data, err := ix.bytes()
	if err != nil || len(accounts) < 2 {
		return SystemTransferParams{}, ErrNotSystemTransfer
	}
	decoded, err := system.DecodeInstruction(accounts, data)
	if err != nil {
		return SystemTransferParams{}, ErrNotSystemTransfer
	}
	transfer, ok := decoded.Impl.(*system.Transfer)
	if !ok || transfer.Lamports == nil {
		return SystemTransferParams{}, ErrNotSystemTransfer
	}
	return SystemTransferParams{
		From:     transfer.GetFundingAccount().PublicKey,
		To:       transfer.GetRecipientAccount().PublicKey,
		Lamports: *transfer.Lamports,
	}, nil
}
