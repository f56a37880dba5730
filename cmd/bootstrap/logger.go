package bootstrap

import (
	"log/slog"

	"beatbox-store/internal/handler/middleware"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/metrics"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewMetrics,
	),
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg).GetSlogLogger()
}

func NewMetrics(cfg config.MetricsConfig) *metrics.Metrics {
	return metrics.New(cfg.Namespace)
}
