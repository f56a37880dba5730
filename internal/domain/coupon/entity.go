package coupon

import (
	"github.com/shopspring/decimal"
)

const (
	// RedeemThreshold is the balance, in whole coupons, at which a purchase is discounted.
	RedeemThreshold uint64 = 5
	// RedeemCost is how many coupons a discounted purchase returns to the shop.
	RedeemCost uint64 = 5
	// AccrualReward is how many coupons the shop sends with an undiscounted purchase.
	AccrualReward uint64 = 1
)

var redeemDiscount = decimal.NewFromInt(50)

type Action string

const (
	ActionRedeem Action = "redeem"
	ActionAccrue Action = "accrue"
)

// Decision is the outcome of the loyalty rule for one purchase.
type Decision struct {
	action   Action
	coupons  uint64
	discount Discount
}

func (d Decision) Action() Action     { return d.action }
func (d Decision) Coupons() uint64    { return d.coupons }
func (d Decision) Discount() Discount { return d.discount }
func (d Decision) IsRedemption() bool { return d.action == ActionRedeem }

func (d Decision) Apply(price decimal.Decimal) decimal.Decimal {
	return d.discount.Apply(price)
}

// Book is a buyer's coupon balance expressed in whole coupons.
type Book struct {
	balance uint64
}

func NewBook(balance uint64) *Book {
	return &Book{balance: balance}
}

func (b *Book) Balance() uint64 { return b.balance }

func (b *Book) CanRedeem() bool {
	return b.balance >= RedeemThreshold
}

// Decide applies the loyalty rule: a balance of at least RedeemThreshold halves
// the price and moves RedeemCost coupons to the shop, otherwise the shop sends
// AccrualReward coupons to the buyer at full price.
func (b *Book) Decide() Decision {
	if b.CanRedeem() {
		discount, _ := NewPercentageDiscount(redeemDiscount)
		return Decision{action: ActionRedeem, coupons: RedeemCost, discount: discount}
	}
	return Decision{action: ActionAccrue, coupons: AccrualReward, discount: NoDiscount()}
}
