package payment

import (
	"errors"
	"strings"

	"beatbox-store/internal/domain/catalog"
)

var ErrUnknownMode = errors.New("unknown checkout mode")

// Mode selects how a checkout is settled on the ledger.
type Mode int

const (
	NativeTransfer Mode = iota + 1
	TokenTransfer
	TokenTransferWithCoupon
)

// DefaultMode applies when no mode is configured.
const DefaultMode = TokenTransferWithCoupon

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return NativeTransfer, nil
	case "token":
		return TokenTransfer, nil
	case "coupon":
		return TokenTransferWithCoupon, nil
	default:
		return 0, ErrUnknownMode
	}
}

func (m Mode) String() string {
	switch m {
	case NativeTransfer:
		return "native"
	case TokenTransfer:
		return "token"
	case TokenTransferWithCoupon:
		return "coupon"
	default:
		return "unknown"
	}
}

func (m Mode) Currency() catalog.Currency {
	if m == NativeTransfer {
		return catalog.CurrencyNative
	}
	return catalog.CurrencyToken
}

func (m Mode) UsesToken() bool {
	return m == TokenTransfer || m == TokenTransferWithCoupon
}

func (m Mode) UsesCoupon() bool {
	return m == TokenTransferWithCoupon
}
