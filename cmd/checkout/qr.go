package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"
	"beatbox-store/internal/pkg/paymenturl"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/checkout"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func qrCommand() *cli.Command {
	return &cli.Command{
		Name:  "qr",
		Usage: "print a wallet payment link for an order and wait for it to be paid",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Usage: "product to buy as <id>=<quantity>; repeatable", Required: true},
			&cli.StringFlag{Name: "memo", Usage: "memo attached to the payment"},
			&cli.StringFlag{Name: "server", Usage: "print a transaction-request link to this store URL instead of a transfer request"},
			&cli.BoolFlag{Name: "no-wait", Usage: "print the link and exit"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Minute, Usage: "how long to wait for payment"},
		},
		Action: qrAction,
	}
}

func qrAction(c *cli.Context) error {
	rt, err := newRuntime(c)
	if err != nil {
		return err
	}
	query, err := parseItems(c.StringSlice("item"))
	if err != nil {
		return err
	}

	amount := catalog.NewDefaultPriceCalculator(rt.catalog).Calculate(query, rt.mode.Currency())
	if amount.IsZero() {
		return errors.New("can't checkout with charge of 0")
	}
	reference, err := payment.NewReference()
	if err != nil {
		return err
	}

	var link string
	if server := c.String("server"); server != "" {
		link, err = transactionRequestLink(server, query, reference)
	} else {
		link, err = rt.transferRequestLink(amount, reference, c.String("memo"))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, link)

	// A coupon checkout can halve the charge, so the amount is only known for
	// transfer requests and non-coupon transaction requests.
	if c.Bool("no-wait") || (c.String("server") != "" && rt.mode.UsesCoupon()) {
		return nil
	}

	outcome, err := rt.await(c.Context, rt.expectation(reference, amount), c.Duration("timeout"))
	if err != nil {
		return fmt.Errorf("waiting for payment: %w", err)
	}
	if !outcome.Valid() {
		return fmt.Errorf("payment %s: %w", outcome.Signature, outcome.Err)
	}
	fmt.Fprintf(c.App.Writer, "paid %s %s in %s\n", amount, rt.currencyLabel(), outcome.Signature)
	return nil
}

func (rt *runtime) transferRequestLink(amount decimal.Decimal, reference solana.PublicKey, memo string) (string, error) {
	req := paymenturl.TransferRequest{
		Recipient:  rt.keys.Address,
		Amount:     &amount,
		References: []solana.PublicKey{reference},
		Label:      rt.cfg.Checkout.Label,
		Message:    checkout.ThanksMessage,
		Memo:       memo,
	}
	if rt.mode.UsesToken() {
		mint := rt.keys.TokenMint
		req.SPLToken = &mint
	}
	return req.Encode()
}

func transactionRequestLink(server string, query url.Values, reference solana.PublicKey) (string, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("reference", reference.String())
	return paymenturl.EncodeTransactionRequest(strings.TrimRight(server, "/") + "/api/makeTransaction?" + q.Encode())
}
