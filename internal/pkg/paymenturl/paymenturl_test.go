//go:build unit

package paymenturl_test

import (
	"testing"

	"beatbox-store/internal/pkg/paymenturl"
	"beatbox-store/internal/pkg/solana"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTransferRequest(t *testing.T) {
	recipient := solana.MustPublicKey("H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF")
	mint := solana.MustPublicKey("Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr")
	reference := solana.MustPublicKey("7iwitHc5o33SLDX8KqMTaSzUGmGvTekyYG3r1NHUbjJN")
	amount := decimal.RequireFromString("0.15")

	got, err := paymenturl.TransferRequest{
		Recipient:  recipient,
		Amount:     &amount,
		SPLToken:   &mint,
		References: []solana.PublicKey{reference},
		Label:      "Beatbox Store",
		Message:    "Thanks for your order!",
		Memo:       "Order#4098",
	}.Encode()
	require.NoError(t, err)
	assert.Equal(t,
		"solana:H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF"+
			"?amount=0.15"+
			"&spl-token=Gh9ZwEmdLJ8DscKNTkTqPbNwLNNBjuSzaG9Vp2KGtKJr"+
			"&reference=7iwitHc5o33SLDX8KqMTaSzUGmGvTekyYG3r1NHUbjJN"+
			"&label=Beatbox+Store"+
			"&message=Thanks+for+your+order%21"+
			"&memo=Order%234098",
		got)
}

func TestEncodeMinimal(t *testing.T) {
	recipient := solana.MustPublicKey("H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF")
	got, err := paymenturl.TransferRequest{Recipient: recipient}.Encode()
	require.NoError(t, err)
	assert.Equal(t, "solana:H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF", got)

	negative := decimal.NewFromInt(-1)
	_, err = paymenturl.TransferRequest{Recipient: recipient, Amount: &negative}.Encode()
	assert.ErrorIs(t, err, paymenturl.ErrInvalidAmount)
}

func TestParseRoundTrip(t *testing.T) {
	ref1, err := solana.NewRandomPublicKey()
	require.NoError(t, err)
	ref2, err := solana.NewRandomPublicKey()
	require.NoError(t, err)
	amount := decimal.RequireFromString("12.5")
	want := paymenturl.TransferRequest{
		Recipient:  solana.MustPublicKey("H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF"),
		Amount:     &amount,
		References: []solana.PublicKey{ref1, ref2},
		Label:      "Beatbox Store",
		Message:    "a & b = c",
	}
	encoded, err := want.Encode()
	require.NoError(t, err)

	got, err := paymenturl.Parse(encoded)
	require.NoError(t, err)
	require.NotNil(t, got.Amount)
	assert.True(t, want.Amount.Equal(*got.Amount))
	want.Amount, got.Amount = nil, nil
	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseErrors(t *testing.T) {
	_, err := paymenturl.Parse("bitcoin:abc")
	assert.ErrorIs(t, err, paymenturl.ErrInvalidScheme)
	_, err = paymenturl.Parse("solana:nope")
	assert.ErrorIs(t, err, paymenturl.ErrInvalidRecipient)
	_, err = paymenturl.Parse("solana:H47S6dWJpo9HvAxpwQWLjVPxSwZ8XJR5axKJozyaPmiF?amount=-2")
	assert.ErrorIs(t, err, paymenturl.ErrInvalidAmount)
}

func TestEncodeTransactionRequest(t *testing.T) {
	got, err := paymenturl.EncodeTransactionRequest("https://shop.example/api/makeTransaction")
	require.NoError(t, err)
	assert.Equal(t, "solana:https://shop.example/api/makeTransaction", got)

	got, err = paymenturl.EncodeTransactionRequest("https://shop.example/api/makeTransaction?beatbox-tshirt=1&reference=abc")
	require.NoError(t, err)
	assert.Equal(t, "solana:https%3A%2F%2Fshop.example%2Fapi%2FmakeTransaction%3Fbeatbox-tshirt%3D1%26reference%3Dabc", got)

	_, err = paymenturl.EncodeTransactionRequest("http://insecure.example")
	assert.ErrorIs(t, err, paymenturl.ErrInvalidLink)
}
