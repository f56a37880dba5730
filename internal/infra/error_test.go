//go:build unit

package infra_test

import (
	"errors"
	"io"
	"testing"

	"beatbox-store/internal/infra"
	"beatbox-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapLedgerErr(t *testing.T) {
	t.Run("unavailable is marked", func(t *testing.T) {
		err := infra.WrapLedgerErr("dial ledger", io.ErrUnexpectedEOF, infra.KindUnavailable)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "UNAVAILABLE: dial ledger")
	})

	t.Run("unavailable without cause", func(t *testing.T) {
		err := infra.WrapLedgerErr("status 503", nil, infra.KindUnavailable)
		assert.ErrorIs(t, err, errs.ErrLedgerUnavailable)
	})

	t.Run("not found is not unavailable", func(t *testing.T) {
		err := infra.WrapLedgerErr("account not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, errors.Is(err, errs.ErrLedgerUnavailable))
		assert.Equal(t, "NOT_FOUND: account not found", err.Error())
	})

	t.Run("rpc error carries code", func(t *testing.T) {
		err := infra.NewRPCError("getTokenSupply", -32602, "Invalid param")
		assert.True(t, infra.IsKind(err, infra.KindRPCError))
		assert.Equal(t, "RPC_ERROR(-32602): getTokenSupply: Invalid param", err.Error())
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindRPCError))
	})
}
