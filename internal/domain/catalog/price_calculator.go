package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single quantity value; larger values are ignored.
const MaxQuantity = 10_000

type PriceCalculator interface {
	Calculate(query map[string][]string, currency Currency) decimal.Decimal
	BuildOrder(query map[string][]string, currency Currency) Order
}

type LineItem struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order is rebuilt from the request on every call and never stored.
type Order struct {
	Items []LineItem
	Total decimal.Decimal
}

type DefaultPriceCalculator struct {
	catalog *Catalog
}

func NewDefaultPriceCalculator(c *Catalog) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{catalog: c}
}

func (pc *DefaultPriceCalculator) Calculate(query map[string][]string, currency Currency) decimal.Decimal {
	return pc.BuildOrder(query, currency).Total
}

// BuildOrder prices every recognized product id in catalog order. Unknown ids are
// ignored and repeated quantities for one id are summed. A quantity that is not a
// whole number in [0, MaxQuantity] counts as zero.
func (pc *DefaultPriceCalculator) BuildOrder(query map[string][]string, currency Currency) Order {
	order := Order{Total: decimal.Zero}
	for _, p := range pc.catalog.products {
		values, ok := query[p.ID()]
		if !ok {
			continue
		}
		var count uint64
		for _, v := range values {
			count += parseQuantity(v)
		}
		if count == 0 {
			continue
		}
		qty := decimal.NewFromUint64(count)
		unit := p.Price(currency)
		subtotal := unit.Mul(qty)
		order.Items = append(order.Items, LineItem{
			ProductID: p.ID(),
			Quantity:  qty,
			UnitPrice: unit,
			Subtotal:  subtotal,
		})
		order.Total = order.Total.Add(subtotal)
	}
	return order
}

func parseQuantity(v string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil || n > MaxQuantity {
		return 0
	}
	return n
}
