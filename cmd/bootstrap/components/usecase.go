package components

import (
	"fmt"
	"log/slog"

	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/usecase/checkout"
	"beatbox-store/internal/usecase/settlement"
	"beatbox-store/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCheckoutModule,
	usecaseSettlementModule,
)

var usecaseBaseOption = fx.Provide(
	NewCatalog,
	fx.Annotate(
		catalog.NewDefaultPriceCalculator,
		fx.As(new(catalog.PriceCalculator)),
	),
	NewCommitment,
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		NewStrategy,
		checkout.NewBuilder,
		checkout.NewUseCase,
	),
)

var usecaseSettlementModule = fx.Module("usecase/settlement",
	fx.Provide(
		settlement.NewFinder,
		settlement.NewValidator,
		fx.Annotate(
			settlement.NewChecker,
			fx.As(new(settlement.StatusChecker)),
		),
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Checkout.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func NewCommitment(cfg config.Config) (shared.Commitment, error) {
	commitment, err := shared.ParseCommitment(cfg.Checkout.Commitment)
	if err != nil {
		return "", fmt.Errorf("invalid SETTLEMENT_COMMITMENT %q: %w", cfg.Checkout.Commitment, err)
	}
	return commitment, nil
}

func NewStrategy(mode payment.Mode, keys ShopKeys, ledger checkout.Ledger, logger *slog.Logger) (checkout.Strategy, error) {
	switch mode {
	case payment.NativeTransfer:
		return checkout.NewNativeStrategy(keys.Address), nil
	case payment.TokenTransfer:
		return checkout.NewTokenStrategy(ledger, keys.Address, keys.TokenMint), nil
	case payment.TokenTransferWithCoupon:
		resolver := checkout.NewCouponResolver(ledger, keys.CouponMint, logger)
		return checkout.NewTokenWithCouponStrategy(ledger, keys.Address, keys.TokenMint, keys.Signer, resolver), nil
	default:
		return nil, payment.ErrUnknownMode
	}
}
