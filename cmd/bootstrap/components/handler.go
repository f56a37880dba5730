package components

import (
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/handler"
	"beatbox-store/internal/handler/api"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/settlement"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		NewSettlementHandler,
		func(c *api.CheckoutHandler, s *api.SettlementHandler) handler.Handlers {
			return handler.Handlers{Checkout: c, Settlement: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewSettlementHandler(checker settlement.StatusChecker, mode payment.Mode, keys ShopKeys) *api.SettlementHandler {
	var mint *solana.PublicKey
	if mode.UsesToken() {
		mint = &keys.TokenMint
	}
	return api.NewSettlementHandler(checker, keys.Address, mint)
}
