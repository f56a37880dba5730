package checkout

import (
	"context"
	"log/slog"
	"math/big"

	"beatbox-store/internal/domain/coupon"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DiscountMessage replaces ThanksMessage when coupons were redeemed.
const DiscountMessage = "Your discount has been applied! Thanks for your order!"

// CouponOutcome is the resolver's contribution to a coupon checkout.
type CouponOutcome struct {
	Decision     coupon.Decision
	Amount       decimal.Decimal
	Instructions []solana.Instruction
	ShopSigns    bool
}

// CouponResolver reads a buyer's coupon balance and builds the matching coupon transfer.
type CouponResolver struct {
	ledger Ledger
	mint   solana.PublicKey
	logger *slog.Logger
}

func NewCouponResolver(ledger Ledger, mint solana.PublicKey, logger *slog.Logger) *CouponResolver {
	return &CouponResolver{ledger: ledger, mint: mint, logger: logger}
}

func (r *CouponResolver) Resolve(ctx context.Context, buyer, shop solana.PublicKey, amount decimal.Decimal) (*CouponOutcome, error) {
	buyerAccount, err := solana.FindAssociatedTokenAddress(buyer, r.mint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to derive buyer coupon account")
	}

	var (
		decimals uint8
		balance  uint64
		missing  bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := r.ledger.TokenDecimals(gctx, r.mint)
		if err != nil {
			return errs.Wrap(err, "failed to fetch coupon decimals")
		}
		decimals = d
		return nil
	})
	g.Go(func() error {
		b, err := r.ledger.TokenBalance(gctx, buyerAccount)
		if infra.IsKind(err, infra.KindNotFound) {
			missing = true
			return nil
		}
		if err != nil {
			return errs.Wrap(err, "failed to fetch buyer coupon balance")
		}
		balance = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	book := coupon.NewBook(wholeUnits(balance, decimals))
	decision := book.Decide()
	r.logger.Debug("coupon decision",
		slog.String("buyer", buyer.String()),
		slog.Uint64("balance", book.Balance()),
		slog.String("action", string(decision.Action())),
	)

	units, err := payment.ToBaseUnits(decimal.NewFromUint64(decision.Coupons()), decimals)
	if err != nil {
		return nil, errs.Wrap(err, "failed to convert coupon amount")
	}
	shopAccount, err := solana.FindAssociatedTokenAddress(shop, r.mint)
	if err != nil {
		return nil, errs.Wrap(err, "failed to derive shop coupon account")
	}

	out := &CouponOutcome{Decision: decision, Amount: decision.Apply(amount)}
	if decision.IsRedemption() {
		out.Instructions = []solana.Instruction{
			solana.TransferChecked(buyerAccount, r.mint, shopAccount, buyer, units, decimals),
		}
		return out, nil
	}

	if missing {
		out.Instructions = append(out.Instructions,
			solana.CreateAssociatedTokenAccountIdempotent(shop, buyer, r.mint))
	}
	out.Instructions = append(out.Instructions,
		solana.TransferChecked(shopAccount, r.mint, buyerAccount, shop, units, decimals))
	out.ShopSigns = true
	return out, nil
}

func wholeUnits(raw uint64, decimals uint8) uint64 {
	if decimals == 0 {
		return raw
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Quo(new(big.Int).SetUint64(raw), scale).Uint64()
}

// TokenWithCouponStrategy charges in the payment token and swaps coupons in the same transaction.
type TokenWithCouponStrategy struct {
	ledger   Ledger
	shop     solana.PublicKey
	mint     solana.PublicKey
	shopKey  *solana.Keypair
	resolver *CouponResolver
}

func NewTokenWithCouponStrategy(ledger Ledger, shop, mint solana.PublicKey, shopKey *solana.Keypair, resolver *CouponResolver) *TokenWithCouponStrategy {
	return &TokenWithCouponStrategy{ledger: ledger, shop: shop, mint: mint, shopKey: shopKey, resolver: resolver}
}

func (s *TokenWithCouponStrategy) Mode() payment.Mode { return payment.TokenTransferWithCoupon }

func (s *TokenWithCouponStrategy) Plan(ctx context.Context, p BuildParams) (*Plan, error) {
	if s.shopKey == nil {
		return nil, errs.ErrShopKeyNotConfigured
	}

	var (
		decimals uint8
		outcome  *CouponOutcome
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.ledger.TokenDecimals(gctx, s.mint)
		if err != nil {
			return errs.Wrap(err, "failed to fetch token decimals")
		}
		decimals = d
		return nil
	})
	g.Go(func() error {
		o, err := s.resolver.Resolve(gctx, p.Buyer, s.shopKey.PublicKey(), p.Amount)
		if err != nil {
			return err
		}
		outcome = o
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	transfer, err := tokenTransfer(p.Buyer, s.shop, s.mint, outcome.Amount, decimals)
	if err != nil {
		if outcome.Decision.IsRedemption() && errs.Is(err, payment.ErrFractionalAmount) {
			return nil, errs.Mark(err, errs.ErrIndivisibleDiscount)
		}
		return nil, err
	}

	plan := &Plan{
		Amount:       outcome.Amount,
		Instructions: append([]solana.Instruction{transfer.WithReadonlyKey(p.Reference)}, outcome.Instructions...),
		Message:      ThanksMessage,
	}
	if outcome.Decision.IsRedemption() {
		plan.Message = DiscountMessage
	}
	if outcome.ShopSigns {
		plan.Signers = []*solana.Keypair{s.shopKey}
	}
	return plan, nil
}
