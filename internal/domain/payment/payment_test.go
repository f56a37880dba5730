//go:build unit

package payment_test

import (
	"testing"

	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in       string
		want     payment.Mode
		currency catalog.Currency
		coupon   bool
	}{
		{in: "native", want: payment.NativeTransfer, currency: catalog.CurrencyNative},
		{in: "TOKEN", want: payment.TokenTransfer, currency: catalog.CurrencyToken},
		{in: " coupon ", want: payment.TokenTransferWithCoupon, currency: catalog.CurrencyToken, coupon: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := payment.ParseMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.currency, got.Currency())
			assert.Equal(t, tc.coupon, got.UsesCoupon())
			roundTrip, err := payment.ParseMode(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, roundTrip)
		})
	}

	_, err := payment.ParseMode("card")
	assert.ErrorIs(t, err, payment.ErrUnknownMode)
}

func TestNewReferenceIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		ref, err := payment.NewReference()
		require.NoError(t, err)
		require.False(t, ref.IsZero())
		_, dup := seen[ref.String()]
		require.False(t, dup)
		seen[ref.String()] = struct{}{}
	}
}

func TestToBaseUnits(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		decimals uint8
		want     uint64
		err      error
	}{
		{name: "tshirt in lamports", amount: "0.05", decimals: payment.NativeDecimals, want: 50_000_000},
		{name: "ten usdc", amount: "10", decimals: 6, want: 10_000_000},
		{name: "halved usdc", amount: "2.5", decimals: 6, want: 2_500_000},
		{name: "zero decimals", amount: "5", decimals: 0, want: 5},
		{name: "too precise", amount: "0.0000001", decimals: 6, err: payment.ErrFractionalAmount},
		{name: "negative", amount: "-1", decimals: 6, err: payment.ErrNegativeAmount},
		{name: "overflow", amount: "18446744073709551616", decimals: 0, err: payment.ErrAmountOutOfRange},
		{name: "huge exponent", amount: "1e100000000", decimals: 9, err: payment.ErrAmountOutOfRange},
		{name: "tiny exponent", amount: "1e-10000000", decimals: 9, err: payment.ErrFractionalAmount},
		{name: "zero", amount: "0", decimals: 9, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := payment.ToBaseUnits(decimal.RequireFromString(tc.amount), tc.decimals)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, decimal.RequireFromString(tc.amount).Equal(payment.FromBaseUnits(got, tc.decimals)))
		})
	}
}
