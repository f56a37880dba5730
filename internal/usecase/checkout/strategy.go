package checkout

import (
	"context"

	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"

	"github.com/shopspring/decimal"
)

// ThanksMessage is shown to the buyer for an order paid at full price.
const ThanksMessage = "Thanks for your order!"

type BuildParams struct {
	Buyer     solana.PublicKey
	Reference solana.PublicKey
	Amount    decimal.Decimal
}

// Plan is everything a strategy contributes to one transaction.
type Plan struct {
	Amount       decimal.Decimal
	Instructions []solana.Instruction
	Signers      []*solana.Keypair
	Message      string
}

// Strategy builds the instructions for one payment mode.
type Strategy interface {
	Mode() payment.Mode
	Plan(ctx context.Context, p BuildParams) (*Plan, error)
}

type NativeStrategy struct {
	shop solana.PublicKey
}

func NewNativeStrategy(shop solana.PublicKey) *NativeStrategy {
	return &NativeStrategy{shop: shop}
}

func (s *NativeStrategy) Mode() payment.Mode { return payment.NativeTransfer }

func (s *NativeStrategy) Plan(_ context.Context, p BuildParams) (*Plan, error) {
	lamports, err := payment.ToBaseUnits(p.Amount, payment.NativeDecimals)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert charge to lamports")
	}
	transfer := solana.SystemTransfer(p.Buyer, s.shop, lamports).WithReadonlyKey(p.Reference)
	return &Plan{
		Amount:       p.Amount,
		Instructions: []solana.Instruction{transfer},
		Message:      ThanksMessage,
	}, nil
}

type TokenStrategy struct {
	ledger Ledger
	shop   solana.PublicKey
	mint   solana.PublicKey
}

func NewTokenStrategy(ledger Ledger, shop, mint solana.PublicKey) *TokenStrategy {
	return &TokenStrategy{ledger: ledger, shop: shop, mint: mint}
}

func (s *TokenStrategy) Mode() payment.Mode { return payment.TokenTransfer }

func (s *TokenStrategy) Plan(ctx context.Context, p BuildParams) (*Plan, error) {
	decimals, err := s.ledger.TokenDecimals(ctx, s.mint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch token decimals")
	}
	transfer, err := tokenTransfer(p.Buyer, s.shop, s.mint, p.Amount, decimals)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Amount:       p.Amount,
		Instructions: []solana.Instruction{transfer.WithReadonlyKey(p.Reference)},
		Message:      ThanksMessage,
	}, nil
}

// tokenTransfer moves amount of mint between the associated accounts of from and to.
func tokenTransfer(from, to, mint solana.PublicKey, amount decimal.Decimal, decimals uint8) (solana.Instruction, error) {
	units, err := payment.ToBaseUnits(amount, decimals)
	if err != nil {
		return solana.Instruction{}, errs.Wrap(err, "failed to convert charge to token units")
	}
	source, err := solana.FindAssociatedTokenAddress(from, mint)
	if err != nil {
		return solana.Instruction{}, errs.Wrap(err, "failed to derive source token account")
	}
	destination, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return solana.Instruction{}, errs.Wrap(err, "failed to derive destination token account")
	}
	return solana.TransferChecked(source, mint, destination, from, units, decimals), nil
}
