package coupon

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// Discount takes a percentage off a price. The zero value is no discount.
type Discount struct {
	percentOff *decimal.Decimal
}

func NewPercentageDiscount(percentOff decimal.Decimal) (Discount, error) {
	if percentOff.IsNegative() || percentOff.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NoDiscount() Discount {
	return Discount{}
}

// Apply never returns a negative price.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	if d.percentOff == nil {
		return price
	}
	return price.Sub(price.Mul(*d.percentOff).Div(hundred))
}

func (d Discount) String() string {
	if d.percentOff == nil {
		return "no discount"
	}
	return d.percentOff.String() + "% off"
}
