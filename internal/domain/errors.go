package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("inventory full")
	ErrParse            = errors.New("parse failure")
	ErrExceedsBalance   = errors.New("payment exceeds balance")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrExecution        = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindCapacityExceeded ErrorKind = "capacity_exceeded"
	KindParse            ErrorKind = "parse_failure"
	KindExceedsBalance   ErrorKind = "exceeds_balance"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PaymentError reports a payment larger than the boat's balance.
// It matches ErrExceedsBalance with errors.Is.
type PaymentError struct {
	Name   string
	Owed   decimal.Decimal
	Amount decimal.Decimal
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment %s for %q exceeds balance %s",
		e.Amount.StringFixed(2), e.Name, e.Owed.StringFixed(2))
}

func (e *PaymentError) Unwrap() error { return ErrExceedsBalance }

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return KindOf(err) == kind
}

// KindOf maps an error to its kind using the sentinel it wraps.
// Unclassified errors are KindExecution; nil has no kind.
func KindOf(err error) ErrorKind {
	var oe *OpError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &oe) && oe.Kind != "":
		return oe.Kind
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrExceedsBalance):
		return KindExceedsBalance
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	default:
		return KindExecution
	}
}
