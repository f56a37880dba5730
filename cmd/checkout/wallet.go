package main

import (
	"fmt"
	"strings"

	"beatbox-store/internal/domain/coupon"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/solana"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func couponsCommand() *cli.Command {
	return &cli.Command{
		Name:      "coupons",
		Usage:     "show a buyer's coupon balance and what their next coupon checkout does",
		ArgsUsage: "<owner-address>",
		Action:    couponsAction,
	}
}

func couponsAction(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}
	owner, err := solana.ParsePublicKey(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	account, err := solana.FindAssociatedTokenAddress(owner, rt.keys.CouponMint)
	if err != nil {
		return err
	}

	var (
		decimals uint8
		raw      uint64
	)
	g, ctx := errgroup.WithContext(c.Context)
	g.Go(func() error {
		var err error
		decimals, err = rt.ledger.TokenDecimals(ctx, rt.keys.CouponMint)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = rt.ledger.TokenBalance(ctx, account)
		if infra.IsKind(err, infra.KindNotFound) {
			raw, err = 0, nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("reading coupon balance: %w", err)
	}

	book := coupon.NewBook(uint64(payment.FromBaseUnits(raw, decimals).IntPart()))
	decision := book.Decide()
	fmt.Fprintf(c.App.Writer, "coupons: %d\n", book.Balance())
	if decision.IsRedemption() {
		fmt.Fprintf(c.App.Writer, "next coupon checkout: redeems %d coupons for %s\n", decision.Coupons(), decision.Discount())
	} else {
		fmt.Fprintf(c.App.Writer, "next coupon checkout: earns %d coupon\n", decision.Coupons())
	}
	return nil
}

func airdropCommand() *cli.Command {
	return &cli.Command{
		Name:      "airdrop",
		Usage:     "request test SOL on devnet or a local validator",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sol", Value: "1", Usage: "amount of SOL to request"},
		},
		Action: airdropAction,
	}
}

func airdropAction(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}
	to, err := solana.ParsePublicKey(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	amount, err := decimal.NewFromString(c.String("sol"))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	lamports, err := payment.ToBaseUnits(amount, payment.NativeDecimals)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	sig, err := rt.ledger.RequestAirdrop(c.Context, to, lamports)
	if err != nil {
		return fmt.Errorf("requesting airdrop: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "airdropped %s SOL to %s in %s\n", amount, to, sig)
	return nil
}
