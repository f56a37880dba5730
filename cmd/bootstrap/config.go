package bootstrap

import (
	"beatbox-store/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		SplitConfig,
	),
)

// Sections lets constructors depend on the one config group they read.
type Sections struct {
	fx.Out

	Log      config.LogConfig
	Ledger   config.LedgerConfig
	Shop     config.ShopConfig
	Checkout config.CheckoutConfig
	Metrics  config.MetricsConfig
}

func SplitConfig(cfg config.Config) Sections {
	return Sections{
		Log:      cfg.Log,
		Ledger:   cfg.Ledger,
		Shop:     cfg.Shop,
		Checkout: cfg.Checkout,
		Metrics:  cfg.Metrics,
	}
}
