package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrNegativePrice      = errors.New("product price cannot be negative")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrUnknownCurrency    = errors.New("unknown currency")
)

// Currency selects which unit price of a product applies.
type Currency string

const (
	CurrencyNative Currency = "native"
	CurrencyToken  Currency = "token"
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToLower(strings.TrimSpace(s))) {
	case CurrencyNative:
		return CurrencyNative, nil
	case CurrencyToken:
		return CurrencyToken, nil
	default:
		return "", ErrUnknownCurrency
	}
}

type Product struct {
	id          string
	name        string
	description string
	unitName    string
	priceNative decimal.Decimal
	priceToken  decimal.Decimal
}

func NewProduct(id, name, description, unitName string, priceNative, priceToken decimal.Decimal) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyProductID
	}
	if priceNative.IsNegative() || priceToken.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Product{
		id:          id,
		name:        name,
		description: description,
		unitName:    unitName,
		priceNative: priceNative,
		priceToken:  priceToken,
	}, nil
}

func (p *Product) Price(currency Currency) decimal.Decimal {
	if currency == CurrencyNative {
		return p.priceNative
	}
	return p.priceToken
}

func (p *Product) ID() string                   { return p.id }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Description() string          { return p.description }
func (p *Product) UnitName() string             { return p.unitName }
func (p *Product) PriceNative() decimal.Decimal { return p.priceNative }
func (p *Product) PriceToken() decimal.Decimal  { return p.priceToken }
