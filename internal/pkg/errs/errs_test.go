//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"beatbox-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesMarkedAndWrapped(t *testing.T) {
	wrapped := errs.Wrap(errs.ErrLedgerUnavailable, "getLatestBlockhash")
	assert.True(t, errs.Is(wrapped, errs.ErrLedgerUnavailable))

	marked := errs.Mark(errors.New("bad base58"), errs.ErrInvalidReference)
	assert.True(t, errs.Is(marked, errs.ErrInvalidReference))
	assert.False(t, errs.Is(marked, errs.ErrInvalidAccount))

	assert.Equal(t, errs.ErrMissingReference, errs.Mark(nil, errs.ErrMissingReference))
	assert.NoError(t, errs.Wrap(nil, "nothing"))
	assert.NoError(t, errs.Wrapf(nil, "nothing %d", 1))
}

func TestReasonOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "leaf", err: errs.ErrInvalidTransaction, want: "invalid transaction"},
		{name: "wrapped once", err: errs.Wrapf(errs.ErrInvalidTransaction, "paid %d lamports", 42), want: "paid 42 lamports"},
		{
			name: "wrapped twice",
			err:  errs.Wrap(errs.Wrap(errs.ErrInvalidTransaction, "inner"), "outer"),
			want: "outer: inner",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.ReasonOf(tc.err))
		})
	}
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
