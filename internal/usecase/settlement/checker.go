package settlement

import (
	"context"

	"beatbox-store/internal/pkg/errs"
	"beatbox-store/internal/pkg/solana"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusInvalid   Status = "invalid"
)

type CheckResult struct {
	Status    Status
	Signature solana.Signature
	// Reason wraps errs.ErrInvalidTransaction when Status is StatusInvalid.
	Reason error
}

// Checker runs one find-and-validate round for a reference.
type Checker struct {
	finder    *Finder
	validator *Validator
}

func NewChecker(finder *Finder, validator *Validator) *Checker {
	return &Checker{finder: finder, validator: validator}
}

// Check reports StatusPending with a nil error while nothing has landed. A
// non-nil error is transient and the round can be retried.
func (c *Checker) Check(ctx context.Context, exp Expectation) (CheckResult, error) {
	rec, err := c.finder.FindOldest(ctx, exp.Reference)
	if errs.Is(err, errs.ErrSignatureNotFound) {
		return CheckResult{Status: StatusPending}, nil
	}
	if err != nil {
		return CheckResult{Status: StatusPending}, err
	}

	err = c.validator.Validate(ctx, rec.Signature, exp)
	switch {
	case err == nil:
		return CheckResult{Status: StatusConfirmed, Signature: rec.Signature}, nil
	case errs.Is(err, errs.ErrInvalidTransaction):
		return CheckResult{Status: StatusInvalid, Signature: rec.Signature, Reason: err}, nil
	case errs.Is(err, errs.ErrSignatureNotFound):
		return CheckResult{Status: StatusPending, Signature: rec.Signature}, nil
	default:
		return CheckResult{Status: StatusPending, Signature: rec.Signature}, err
	}
}

type StatusChecker interface {
	Check(ctx context.Context, exp Expectation) (CheckResult, error)
}

var _ StatusChecker = (*Checker)(nil)
