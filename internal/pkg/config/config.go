package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, ledger endpoint, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Ledger    LedgerConfig
	Shop      ShopConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// CORSConfig defaults to any origin: wallets call makeTransaction from their own origin.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type LedgerConfig struct {
	RPCURL    string        `envconfig:"LEDGER_RPC_URL" default:"https://api.devnet.solana.com"`
	AuthToken string        `envconfig:"LEDGER_AUTH_TOKEN"`
	Timeout   time.Duration `envconfig:"LEDGER_TIMEOUT" default:"10s"`
}

// ShopConfig holds raw key material; cmd/bootstrap parses it.
type ShopConfig struct {
	Address    string `envconfig:"SHOP_ADDRESS" default:"H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF"`
	PrivateKey string `envconfig:"SHOP_PRIVATE_KEY"`
	TokenMint  string `envconfig:"TOKEN_MINT" default:"Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr"`
	CouponMint string `envconfig:"COUPON_MINT" default:"7iwitHc5o33SLDX8KqMTaSzUGmGvTekyYG3r1NHUbjJN"`
}

type CheckoutConfig struct {
	Mode         string        `envconfig:"CHECKOUT_MODE" default:"coupon"`
	CatalogPath  string        `envconfig:"CATALOG_PATH"`
	Label        string        `envconfig:"STORE_LABEL" default:"Beatbox Store"`
	Icon         string        `envconfig:"STORE_ICON" default:"https://solana.com/src/img/branding/solanaLogoMark.svg"`
	PollInterval time.Duration `envconfig:"SETTLEMENT_POLL_INTERVAL" default:"500ms"`
	Commitment   string        `envconfig:"SETTLEMENT_COMMITMENT" default:"confirmed"`
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"beatbox"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadCLIConfig reads every group except Server, so the checkout CLI runs
// without a listen port.
func LoadCLIConfig() (Config, error) {
	var cfg Config
	groups := []any{&cfg.Log, &cfg.Ledger, &cfg.Shop, &cfg.Checkout, &cfg.Metrics}
	for _, g := range groups {
		if err := envconfig.Process("", g); err != nil {
			return Config{}, fmt.Errorf("failed to process env config: %w", err)
		}
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Ledger: LedgerConfig{
			RPCURL:  "http://localhost:8899", // solana-test-validator
			Timeout: 5 * time.Second,
		},
		Shop: ShopConfig{
			Address:    "H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF",
			TokenMint:  "Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr",
			CouponMint: "7iwitHc5o33SLDX8KqMTaSzUGmGvTekyYG3r1NHUbjJN",
		},
		Checkout: CheckoutConfig{
			Mode:         "coupon",
			Label:        "Beatbox Store",
			Icon:         "https://solana.com/src/img/branding/solanaLogoMark.svg",
			PollInterval: 500 * time.Millisecond,
			Commitment:   "confirmed",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Metrics: MetricsConfig{
			Namespace: "beatbox_test",
		},
	}
}
