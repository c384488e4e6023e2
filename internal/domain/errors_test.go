package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "flatfile.read", Kind: KindExecution, Path: "boats.csv", Err: root}

	assert.ErrorIs(t, err, root)
	assert.Contains(t, err.Error(), "flatfile.read")
	assert.Contains(t, err.Error(), "path=boats.csv")

	var got *OpError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &got)
	assert.Equal(t, KindExecution, got.Kind)
}

func TestPaymentErrorMatchesSentinel(t *testing.T) {
	err := &PaymentError{
		Name:   "Betty",
		Owed:   decimal.RequireFromString("100"),
		Amount: decimal.RequireFromString("150.5"),
	}

	assert.ErrorIs(t, err, ErrExceedsBalance)
	assert.Equal(t, `payment 150.50 for "Betty" exceeds balance 100.00`, err.Error())
	assert.True(t, IsKind(err, KindExceedsBalance))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("remove: %w", ErrNotFound)))
	assert.Equal(t, KindCapacityExceeded, KindOf(ErrCapacityExceeded))
	assert.Equal(t, KindParse, KindOf(ErrParse))
	assert.Equal(t, KindExecution, KindOf(errors.New("disk on fire")))
	assert.Equal(t, KindInvalidConfig, KindOf(&OpError{Op: "x", Kind: KindInvalidConfig}))
}
