package settlement

import (
	"context"
	"fmt"

	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Expectation is what a settled checkout must pay.
type Expectation struct {
	Reference solana.PublicKey
	Recipient solana.PublicKey
	Amount    decimal.Decimal
	// Mint is nil for native transfers.
	Mint *solana.PublicKey
}

func (e Expectation) String() string {
	if e.Mint == nil {
		return fmt.Sprintf("%s SOL to %s", e.Amount, e.Recipient)
	}
	return fmt.Sprintf("%s of %s to %s", e.Amount, e.Mint, e.Recipient)
}

type Validator struct {
	ledger     Ledger
	commitment shared.Commitment
}

func NewValidator(ledger Ledger, commitment shared.Commitment) *Validator {
	return &Validator{ledger: ledger, commitment: commitment}
}

func invalid(format string, args ...any) error {
	return errs.Wrapf(errs.ErrInvalidTransaction, format, args...)
}

// Validate checks that sig pays exp. It returns errs.ErrSignatureNotFound while
// the transaction is not visible at the validator's commitment and
// errs.ErrInvalidTransaction when it is visible but does not pay exp.
func (v *Validator) Validate(ctx context.Context, sig solana.Signature, exp Expectation) error {
	rec, err := v.ledger.Transaction(ctx, sig, v.commitment)
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrap(errs.ErrSignatureNotFound, "transaction "+sig.String()+" not visible yet")
	}
	if err != nil {
		return errs.Wrap(err, "failed to fetch transaction")
	}
	if rec.Failed {
		return invalid("transaction %s failed: %s", sig, rec.FailureReason)
	}

	ixs, err := solana.DecompileInstructions(rec.Transaction, rec.Loaded)
	if err != nil {
		return invalid("transaction %s cannot be decoded: %v", sig, err)
	}

	if exp.Mint == nil {
		return v.validateNative(sig, ixs, exp)
	}
	return v.validateToken(ctx, sig, ixs, exp)
}

func (v *Validator) validateNative(sig solana.Signature, ixs []solana.Instruction, exp Expectation) error {
	want, err := payment.ToBaseUnits(exp.Amount, payment.NativeDecimals)
	if err != nil {
		return errs.Wrap(err, "failed to convert expected amount")
	}
	for _, ix := range ixs {
		if !ix.HasAccount(exp.Reference) {
			continue
		}
		params, err := solana.DecodeSystemTransfer(ix)
		if err != nil {
			continue
		}
		if params.To != exp.Recipient {
			return invalid("transfer goes to %s, expected %s", params.To, exp.Recipient)
		}
		if params.Lamports != want {
			return invalid("transfer is %d lamports, expected %d", params.Lamports, want)
		}
		return nil
	}
	return invalid("transaction %s has no transfer carrying the reference", sig)
}

func (v *Validator) validateToken(ctx context.Context, sig solana.Signature, ixs []solana.Instruction, exp Expectation) error {
	mint := *exp.Mint
	decimals, err := v.ledger.TokenDecimals(ctx, mint)
	if err != nil {
		return errs.Wrap(err, "failed to fetch token decimals")
	}
	want, err := payment.ToBaseUnits(exp.Amount, decimals)
	if err != nil {
		return errs.Wrap(err, "failed to convert expected amount")
	}
	destination, err := solana.FindAssociatedTokenAddress(exp.Recipient, mint)
	if err != nil {
		return errs.Wrap(err, "failed to derive recipient token account")
	}

	for _, ix := range ixs {
		if !ix.HasAccount(exp.Reference) {
			continue
		}
		params, err := solana.DecodeTokenTransfer(ix)
		if err != nil {
			continue
		}
		if params.Destination != destination {
			return invalid("token transfer goes to %s, expected %s", params.Destination, destination)
		}
		if params.Mint != nil && *params.Mint != mint {
			return invalid("token transfer uses mint %s, expected %s", *params.Mint, mint)
		}
		if params.Amount != want {
			return invalid("token transfer is %d units, expected %d", params.Amount, want)
		}
		return nil
	}
	return invalid("transaction %s has no token transfer carrying the reference", sig)
}
