package components

import (
	"fmt"
	"log/slog"
	"strings"

	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/solana"

	"go.uber.org/fx"
)

var ShopModule = fx.Module("shop",
	fx.Provide(
		NewShopKeys,
		NewCheckoutMode,
	),
)

// ShopKeys is the parsed form of config.ShopConfig. Signer is nil when no
// private key is configured.
type ShopKeys struct {
	Address    solana.PublicKey
	Signer     *solana.Keypair
	TokenMint  solana.PublicKey
	CouponMint solana.PublicKey
}

func NewShopKeys(cfg config.Config) (ShopKeys, error) {
	return ParseShopKeys(cfg.Shop)
}

func ParseShopKeys(cfg config.ShopConfig) (ShopKeys, error) {
	var keys ShopKeys

	if strings.TrimSpace(cfg.PrivateKey) != "" {
		signer, err := solana.KeypairFromBase58(cfg.PrivateKey)
		if err != nil {
			return ShopKeys{}, fmt.Errorf("invalid SHOP_PRIVATE_KEY: %w", err)
		}
		keys.Signer = signer
	}

	switch {
	case strings.TrimSpace(cfg.Address) != "":
		address, err := solana.ParsePublicKey(strings.TrimSpace(cfg.Address))
		if err != nil {
			return ShopKeys{}, fmt.Errorf("invalid SHOP_ADDRESS: %w", err)
		}
		if keys.Signer != nil && keys.Signer.PublicKey() != address {
			return ShopKeys{}, fmt.Errorf("SHOP_PRIVATE_KEY does not belong to SHOP_ADDRESS %s", address)
		}
		keys.Address = address
	case keys.Signer != nil:
		keys.Address = keys.Signer.PublicKey()
	default:
		return ShopKeys{}, fmt.Errorf("SHOP_ADDRESS is required")
	}

	var err error
	if keys.TokenMint, err = solana.ParsePublicKey(strings.TrimSpace(cfg.TokenMint)); err != nil {
		return ShopKeys{}, fmt.Errorf("invalid TOKEN_MINT: %w", err)
	}
	if keys.CouponMint, err = solana.ParsePublicKey(strings.TrimSpace(cfg.CouponMint)); err != nil {
		return ShopKeys{}, fmt.Errorf("invalid COUPON_MINT: %w", err)
	}
	return keys, nil
}

func NewCheckoutMode(cfg config.Config, keys ShopKeys, logger *slog.Logger) (payment.Mode, error) {
	mode := payment.DefaultMode
	if strings.TrimSpace(cfg.Checkout.Mode) != "" {
		var err error
		if mode, err = payment.ParseMode(cfg.Checkout.Mode); err != nil {
			return 0, fmt.Errorf("invalid CHECKOUT_MODE %q: %w", cfg.Checkout.Mode, err)
		}
	}
	if mode.UsesCoupon() && keys.Signer == nil {
		logger.Warn("coupon checkout has no shop signing key; checkouts will fail until SHOP_PRIVATE_KEY is set")
	}
	logger.Info("checkout mode selected", "mode", mode.String(), "shop", keys.Address.String())
	return mode, nil
}
