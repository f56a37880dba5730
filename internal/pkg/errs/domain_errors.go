package errs

import "errors"

// Domain-specific sentinel errors for the checkout and settlement use cases
var (
	// Checkout request errors
	ErrZeroCharge       = errors.New("can't checkout with charge of 0")
	ErrMissingReference = errors.New("no reference provided")
	ErrMissingAccount   = errors.New("no account provided")
	ErrInvalidReference = errors.New("reference is not a valid public key")
	ErrInvalidAccount   = errors.New("account is not a valid public key")

	// ErrIndivisibleDiscount: the halved price of a coupon checkout falls between
	// two base units of the payment token.
	ErrIndivisibleDiscount = errors.New("discounted price is not payable in whole token units")

	// Configuration errors
	ErrShopKeyNotConfigured = errors.New("shop signing key is not configured")

	// Ledger errors
	ErrLedgerUnavailable = errors.New("ledger is unavailable")

	// Settlement errors
	ErrSignatureNotFound  = errors.New("signature not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
)
