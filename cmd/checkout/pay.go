package main

import (
	"fmt"
	"time"

	"beatbox-store/cmd/bootstrap/components"
	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/checkout"

	"github.com/urfave/cli/v2"
)

func payCommand() *cli.Command {
	return &cli.Command{
		Name:  "pay",
		Usage: "build, sign and send a checkout transaction, then wait for settlement",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "keypair", Aliases: []string{"k"}, Usage: "buyer keypair: JSON file or base58 secret", EnvVars: []string{"BUYER_KEYPAIR"}, Required: true},
			&cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Usage: "product to buy as <id>=<quantity>; repeatable", Required: true},
			&cli.DurationFlag{Name: "timeout", Value: 2 * time.Minute, Usage: "how long to wait for settlement"},
		},
		Action: payAction,
	}
}

func payAction(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}
	buyer, err := loadKeypair(c.String("keypair"))
	if err != nil {
		return fmt.Errorf("loading buyer keypair: %w", err)
	}
	query, err := parseItems(c.StringSlice("item"))
	if err != nil {
		return err
	}

	strategy, err := components.NewStrategy(rt.mode, rt.keys, rt.ledger, rt.logger)
	if err != nil {
		return err
	}
	useCase := checkout.NewUseCase(
		catalog.NewDefaultPriceCalculator(rt.catalog),
		checkout.NewBuilder(rt.ledger, rt.logger),
		strategy, rt.logger, nil,
	)

	reference, err := payment.NewReference()
	if err != nil {
		return err
	}
	res, err := useCase.MakeTransaction(c.Context, checkout.Request{
		Account:   buyer.PublicKey().String(),
		Reference: reference.String(),
		Query:     query,
	})
	if err != nil {
		return fmt.Errorf("building transaction: %w", err)
	}

	tx, err := solana.DecodeTransactionBase64(res.Transaction)
	if err != nil {
		return fmt.Errorf("decoding transaction: %w", err)
	}
	if err := solana.PartialSign(tx, buyer); err != nil {
		return fmt.Errorf("signing transaction: %w", err)
	}
	if missing := solana.MissingSigners(tx); len(missing) > 0 {
		return fmt.Errorf("refusing to send: transaction still needs signatures from %v", missing)
	}

	sig, err := rt.ledger.SendTransaction(c.Context, tx, rt.commitment)
	if err != nil {
		return fmt.Errorf("sending transaction: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "%s\nsent %s %s, reference %s\ntransaction %s\n",
		res.Message, res.Amount, rt.currencyLabel(), reference, sig)

	outcome, err := rt.await(c.Context, rt.expectation(reference, res.Amount), c.Duration("timeout"))
	if err != nil {
		return fmt.Errorf("waiting for settlement: %w", err)
	}
	if !outcome.Valid() {
		return fmt.Errorf("settlement %s: %w", outcome.Signature, outcome.Err)
	}
	fmt.Fprintf(c.App.Writer, "confirmed %s\n", outcome.Signature)
	return nil
}
