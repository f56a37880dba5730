package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "checkout",
		Usage: "pay for, request and track beatbox-store orders from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rpc", Usage: "ledger JSON-RPC endpoint (overrides LEDGER_RPC_URL)"},
			&cli.StringFlag{Name: "mode", Usage: "native, token or coupon (overrides CHECKOUT_MODE)"},
			&cli.StringFlag{Name: "commitment", Usage: "processed, confirmed or finalized (overrides SETTLEMENT_COMMITMENT)"},
			&cli.StringFlag{Name: "catalog", Usage: "catalog TOML file (overrides CATALOG_PATH)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides LOG_LEVEL)"},
		},
		Commands: []*cli.Command{
			payCommand(),
			qrCommand(),
			couponsCommand(),
			airdropCommand(),
		},
	}
}
