package paymenturl

import (
	"errors"
	"net/url"
	"strings"

	"beatbox-store/internal/pkg/solana"

	"github.com/shopspring/decimal"
)

const scheme = "solana"

var (
	ErrInvalidScheme    = errors.New("payment url must use the solana scheme")
	ErrInvalidRecipient = errors.New("payment url recipient is not a valid public key")
	ErrInvalidAmount    = errors.New("payment url amount must be a non-negative decimal")
	ErrInvalidLink      = errors.New("transaction request link must be an https url")
)

// TransferRequest is a wallet-resolvable payment request. Zero-valued optional
// fields are omitted from the URL.
type TransferRequest struct {
	Recipient  solana.PublicKey
	Amount     *decimal.Decimal
	SPLToken   *solana.PublicKey
	References []solana.PublicKey
	Label      string
	Message    string
	Memo       string
}

// Encode renders the request as solana:<recipient>?amount=...&spl-token=...&reference=...
func (r TransferRequest) Encode() (string, error) {
	if r.Amount != nil && r.Amount.IsNegative() {
		return "", ErrInvalidAmount
	}

	var params []string
	add := func(key, value string) {
		params = append(params, key+"="+url.QueryEscape(value))
	}
	if r.Amount != nil {
		add("amount", r.Amount.String())
	}
	if r.SPLToken != nil {
		add("spl-token", r.SPLToken.String())
	}
	for _, ref := range r.References {
		add("reference", ref.String())
	}
	if r.Label != "" {
		add("label", r.Label)
	}
	if r.Message != "" {
		add("message", r.Message)
	}
	if r.Memo != "" {
		add("memo", r.Memo)
	}

	out := scheme + ":" + r.Recipient.String()
	if len(params) > 0 {
		out += "?" + strings.Join(params, "&")
	}
	return out, nil
}

func Parse(raw string) (TransferRequest, error) {
	rest, ok := strings.CutPrefix(raw, scheme+":")
	if !ok {
		return TransferRequest{}, ErrInvalidScheme
	}
	path, query, _ := strings.Cut(rest, "?")

	var req TransferRequest
	recipient, err := solana.ParsePublicKey(path)
	if err != nil {
		return TransferRequest{}, ErrInvalidRecipient
	}
	req.Recipient = recipient

	values, err := url.ParseQuery(query)
	if err != nil {
		return TransferRequest{}, err
	}
	if v := values.Get("amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil || amount.IsNegative() {
			return TransferRequest{}, ErrInvalidAmount
		}
		req.Amount = &amount
	}
	if v := values.Get("spl-token"); v != "" {
		mint, err := solana.ParsePublicKey(v)
		if err != nil {
			return TransferRequest{}, err
		}
		req.SPLToken = &mint
	}
	for _, v := range values["reference"] {
		ref, err := solana.ParsePublicKey(v)
		if err != nil {
			return TransferRequest{}, err
		}
		req.References = append(req.References, ref)
	}
	req.Label = values.Get("label")
	req.Message = values.Get("message")
	req.Memo = values.Get("memo")
	return req, nil
}

// EncodeTransactionRequest wraps an https link to an endpoint that builds the
// transaction, as served by POST /api/makeTransaction.
func EncodeTransactionRequest(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return "", ErrInvalidLink
	}
	if u.RawQuery != "" {
		return scheme + ":" + url.QueryEscape(link), nil
	}
	return scheme + ":" + link, nil
}
