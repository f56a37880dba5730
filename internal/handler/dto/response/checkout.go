package response

import (
	"beatbox-store/internal/domain/catalog"
	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/usecase/checkout"
	"beatbox-store/internal/usecase/settlement"
)

type MakeTransactionResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message"`
	Amount      string `json:"amount"`
}

type MerchantResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitName    string `json:"unitName"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
}

type TransactionStatusResponse struct {
	Status    string `json:"status"`
	Signature string `json:"signature,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func FromCheckoutResult(res *checkout.Result) *MakeTransactionResponse {
	return &MakeTransactionResponse{
		Transaction: res.Transaction,
		Message:     res.Message,
		Amount:      res.Amount.String(),
	}
}

func FromProducts(products []*catalog.Product, currency catalog.Currency) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			UnitName:    p.UnitName(),
			Price:       p.Price(currency).String(),
			Currency:    string(currency),
		})
	}
	return out
}

func FromCheckResult(res settlement.CheckResult) *TransactionStatusResponse {
	out := &TransactionStatusResponse{Status: string(res.Status)}
	if res.Status != settlement.StatusPending {
		out.Signature = res.Signature.String()
	}
	out.Reason = errs.ReasonOf(res.Reason)
	return out
}
