//go:build unit || e2e

package builder

import (
	"net/url"

	"beatbox-store/internal/domain/payment"
	reqdto "beatbox-store/internal/handler/dto/request"
	"beatbox-store/internal/pkg/solana"
	"beatbox-store/internal/usecase/checkout"

	"github.com/shopspring/decimal"
)

type CheckoutBuilder struct {
	Buyer       solana.PublicKey
	Reference   solana.PublicKey
	Quantities  map[string]string
	Mode        payment.Mode
	Amount      decimal.Decimal
	Message     string
	Transaction string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	buyer, _ := solana.NewRandomPublicKey()
	reference, _ := solana.NewRandomPublicKey()
	return &CheckoutBuilder{
		Buyer:       buyer,
		Reference:   reference,
		Quantities:  map[string]string{"beatbox-tshirt": "2"},
		Mode:        payment.TokenTransferWithCoupon,
		Amount:      decimal.NewFromInt(10),
		Message:     "Thanks for your order!",
		Transaction: "AQID",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.MakeTransactionRequest {
	return reqdto.MakeTransactionRequest{Account: b.Buyer.String()}
}

func (b *CheckoutBuilder) Query() url.Values {
	q := url.Values{}
	for id, qty := range b.Quantities {
		q.Set(id, qty)
	}
	q.Set("reference", b.Reference.String())
	return q
}

// Path is the makeTransaction URL carrying the cart and the reference.
func (b *CheckoutBuilder) Path() string {
	return "/api/makeTransaction?" + b.Query().Encode()
}

func (b *CheckoutBuilder) BuildUseCaseRequest() checkout.Request {
	return checkout.Request{
		Account:   b.Buyer.String(),
		Reference: b.Reference.String(),
		Query:     b.Query(),
	}
}

func (b *CheckoutBuilder) BuildResult() *checkout.Result {
	return &checkout.Result{
		Transaction: b.Transaction,
		Message:     b.Message,
		Amount:      b.Amount,
		Mode:        b.Mode,
	}
}
