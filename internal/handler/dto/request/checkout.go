package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MakeTransactionRequest carries the buyer wallet. The account is checked by the
// use case so a missing value gets its own error message.
type MakeTransactionRequest struct {
	Account string `json:"account"`
}

type TransactionStatusQuery struct {
	Reference string `form:"reference"`
	Amount    string `form:"amount"`
}

// maxAmountExponent bounds the scale of a client amount so formatting and
// comparisons stay cheap.
const maxAmountExponent = 40

func (q TransactionStatusQuery) ParseAmount() (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(q.Amount))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, false
	}
	return amount, true
}
