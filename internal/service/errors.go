package service

import (
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/validation"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrWouldBeNegative = errors.New("balance would become negative")
)

// Kind classifies a failed transfer.
type Kind int

const (
	KindMalformedRequest Kind = iota + 1
	KindUnknownAccount
	KindNegativeAmount
	KindInsufficientFunds
	KindInternalFault
)

func (k Kind) String() string {
	switch k {
	case KindMalformedRequest:
		return string(validation.ReasonMalformedRequest)
	case KindUnknownAccount:
		return string(validation.ReasonUnknownAccount)
	case KindNegativeAmount:
		return string(validation.ReasonNegativeAmount)
	case KindInsufficientFunds:
		return string(validation.ReasonInsufficientFunds)
	case KindInternalFault:
		return "INTERNAL_FAULT"
	default:
		return "UNKNOWN"
	}
}

func kindFromReason(reason validation.Reason) Kind {
	switch reason {
	case validation.ReasonMalformedRequest:
		return KindMalformedRequest
	case validation.ReasonUnknownAccount:
		return KindUnknownAccount
	case validation.ReasonNegativeAmount:
		return KindNegativeAmount
	case validation.ReasonInsufficientFunds:
		return KindInsufficientFunds
	default:
		return KindInternalFault
	}
}

// TransferError reports the first transfer of a batch that was not applied.
type TransferError struct {
	Kind  Kind
	Index int

	SourceAccountID      int64
	DestinationAccountID int64
	SourceName           string
	DestinationName      string

	// Message is the caller-facing description; empty for internal faults.
	Message string
	Err     error
}

// Error never includes the underlying storage error of an internal fault.
func (e *TransferError) Error() string {
	if e.Kind == KindInternalFault {
		return fmt.Sprintf("transfer #%d: internal fault", e.Index+1)
	}
	return fmt.Sprintf("transfer #%d: %s", e.Index+1, e.Message)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// CallerError reports whether the failure was caused by the request itself.
func (e *TransferError) CallerError() bool {
	return e.Kind != KindInternalFault
}
