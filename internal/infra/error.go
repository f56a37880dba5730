package infra

import (
	"errors"
	"strconv"

	"beatbox-store/internal/pkg/errs"
)

type LedgerErrorKind string

type LedgerError struct {
	Kind LedgerErrorKind
	Code int // JSON-RPC error code, zero when the failure happened before a response
	msg  string
	err  error // wrapped low-level error
}

func (e LedgerError) Error() string {
	prefix := string(e.Kind)
	if e.Code != 0 {
		prefix += "(" + strconv.Itoa(e.Code) + ")"
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e LedgerError) Unwrap() error {
	return e.err
}

// Is lets callers match KindUnavailable against errs.ErrLedgerUnavailable without importing infra.
func (e LedgerError) Is(target error) bool {
	return e.Kind == KindUnavailable && target == errs.ErrLedgerUnavailable
}

func WrapLedgerErr(msg string, err error, kind LedgerErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return LedgerError{Kind: kind, msg: msg, err: err}
}

func NewRPCError(method string, code int, message string) error {
	return LedgerError{Kind: KindRPCError, Code: code, msg: method + ": " + message}
}

func IsKind(err error, kind LedgerErrorKind) bool {
	var e LedgerError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound    LedgerErrorKind = "NOT_FOUND"
	KindUnavailable LedgerErrorKind = "UNAVAILABLE"
	KindRPCError    LedgerErrorKind = "RPC_ERROR"
	KindDecode      LedgerErrorKind = "DECODE"
)
