package bootstrap

import (
	"beatbox-store/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	LedgerModule,
	components.ShopModule,
	components.UseCaseModule,
	components.HandlerModule,
)
