package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"beatbox-store/cmd/bootstrap/components"
	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/handler/middleware"
	"beatbox-store/internal/infra/ledger"
	"beatbox-store/internal/pkg/clock"
	"beatbox-store/internal/pkg/config"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/settlement"
	"beatbox-store/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

// runtime is what every command needs: parsed config, shop keys and a ledger client.
type runtime struct {
	cfg        config.Config
	logger     *slog.Logger
	ledger     *ledger.Client
	keys       components.ShopKeys
	mode       payment.Mode
	commitment shared.Commitment
	catalog    *catalog.Catalog
}

func newRuntime(c *cli.Context) (*runtime, error) {
	cfg, err := config.LoadCLIConfig()
	if err != nil {
		return nil, err
	}
	overrides := map[string]*string{
		"rpc":        &cfg.Ledger.RPCURL,
		"mode":       &cfg.Checkout.Mode,
		"commitment": &cfg.Checkout.Commitment,
		"catalog":    &cfg.Checkout.CatalogPath,
		"log-level":  &cfg.Log.Level,
	}
	for name, dst := range overrides {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}

	// stdout carries command output
	logger := middleware.NewLoggerWithWriter(cfg.Log, os.Stderr).GetSlogLogger()

	keys, err := components.ParseShopKeys(cfg.Shop)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Checkout.Mode) == "" {
		cfg.Checkout.Mode = payment.DefaultMode.String()
	}
	mode, err := payment.ParseMode(cfg.Checkout.Mode)
	if err != nil {
		return nil, fmt.Errorf("invalid mode %q: %w", cfg.Checkout.Mode, err)
	}
	commitment, err := shared.ParseCommitment(cfg.Checkout.Commitment)
	if err != nil {
		return nil, fmt.Errorf("invalid commitment %q: %w", cfg.Checkout.Commitment, err)
	}
	cat, err := catalog.Load(cfg.Checkout.CatalogPath)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		ledger:     ledger.NewClient(cfg.Ledger, logger, nil),
		keys:       keys,
		mode:       mode,
		commitment: commitment,
		catalog:    cat,
	}, nil
}

func (rt *runtime) expectation(reference solana.PublicKey, amount decimal.Decimal) settlement.Expectation {
	exp := settlement.Expectation{
		Reference: reference,
		Recipient: rt.keys.Address,
		Amount:    amount,
	}
	if rt.mode.UsesToken() {
		mint := rt.keys.TokenMint
		exp.Mint = &mint
	}
	return exp
}

// await polls until the payment for reference is found and validated, or timeout passes.
func (rt *runtime) await(ctx context.Context, exp settlement.Expectation, timeout time.Duration) (settlement.Outcome, error) {
	checker := settlement.NewChecker(
		settlement.NewFinder(rt.ledger, rt.commitment),
		settlement.NewValidator(rt.ledger, rt.commitment),
	)
	poller := settlement.NewPoller(checker, clock.NewRealClock(), rt.cfg.Checkout.PollInterval, rt.logger, nil)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	session := poller.Start(ctx, exp)
	defer session.Stop()
	return session.Wait(ctx)
}

func (rt *runtime) currencyLabel() string {
	if rt.mode.UsesToken() {
		return rt.keys.TokenMint.String()
	}
	return "SOL"
}

// parseItems turns repeated id=qty flags into the query the price calculator reads.
func parseItems(items []string) (url.Values, error) {
	query := url.Values{}
	for _, item := range items {
		id, qty, ok := strings.Cut(item, "=")
		if !ok {
			qty = "1"
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid item %q, want <product-id>=<quantity>", item)
		}
		query.Add(id, strings.TrimSpace(qty))
	}
	return query, nil
}

// loadKeypair accepts a solana-keygen JSON file path or a base58 secret key.
func loadKeypair(value string) (*solana.Keypair, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("a buyer keypair is required")
	}
	if data, err := os.ReadFile(value); err == nil {
		return solana.KeypairFromJSON(data)
	}
	return solana.KeypairFromBase58(value)
}
