package bootstrap

import (
	"log/slog"

	"beatbox-store/internal/infra/ledger"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/metrics"
	"beatbox-store/internal/usecase/checkout"
	"beatbox-store/internal/usecase/settlement"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewLedgerClient,
			fx.As(new(checkout.Ledger)),
			fx.As(new(settlement.Ledger)),
		),
	),
)

func NewLedgerClient(cfg config.LedgerConfig, logger *slog.Logger, m *metrics.Metrics) *ledger.Client {
	logger.Info("ledger client configured", "rpc_url", cfg.RPCURL, "timeout", cfg.Timeout)
	return ledger.NewClient(cfg, logger, m)
}
