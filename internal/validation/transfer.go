package validation

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
)

// Reason classifies why a transfer was rejected.
type Reason string

const (
	ReasonMalformedRequest  Reason = "MALFORMED_REQUEST"
	ReasonUnknownAccount    Reason = "UNKNOWN_ACCOUNT"
	ReasonNegativeAmount    Reason = "NEGATIVE_AMOUNT"
	ReasonInsufficientFunds Reason = "INSUFFICIENT_FUNDS"
)

// Rejection is returned by ValidateTransfer for any rule violation.
type Rejection struct {
	Reason  Reason
	Field   string
	Message string
}

func (r *Rejection) Error() string {
	if r.Field == "" {
		return fmt.Sprintf("%s: %s", r.Reason, r.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", r.Reason, r.Message, r.Field)
}

func reject(reason Reason, field, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateTransfer checks req against the current state of its accounts.
// source and destination are nil when the account could not be found.
// The checks run in a fixed order and the first failure wins:
// malformed request (including an out-of-range amount), unknown account,
// negative amount, insufficient funds.
// On success the request is returned with its defaults resolved.
func ValidateTransfer(req model.TransferRequest, source, destination *model.Account) (model.Transfer, error) {
	if req.SourceAccountID == nil {
		return model.Transfer{}, reject(ReasonMalformedRequest, "sourceAccount.id", "source account is required")
	}
	if req.DestinationAccountID == nil {
		return model.Transfer{}, reject(ReasonMalformedRequest, "destinationAccount.id", "destination account is required")
	}

	amount := req.Amount()
	if err := utils.CheckAmountBounds(amount); err != nil {
		return model.Transfer{}, reject(ReasonMalformedRequest, "cashAmount", "%s", err)
	}

	if source == nil {
		msg := fmt.Sprintf("account %d does not exist", *req.SourceAccountID)
		if destination != nil {
			msg += fmt.Sprintf(" (transfer to %s)", destination.Name)
		}
		return model.Transfer{}, reject(ReasonUnknownAccount, "sourceAccount.id", "%s", msg)
	}
	if destination == nil {
		return model.Transfer{}, reject(ReasonUnknownAccount, "destinationAccount.id",
			"account %d does not exist (transfer from %s)", *req.DestinationAccountID, source.Name)
	}

	if amount.IsNegative() {
		return model.Transfer{}, reject(ReasonNegativeAmount, "cashAmount",
			"amount %s must not be negative", amount)
	}

	if source.AvailableBalance.LessThan(amount) {
		return model.Transfer{}, reject(ReasonInsufficientFunds, "cashAmount",
			"insufficient fund for account %s to %s", source.Name, destination.Name)
	}

	return req.Resolve(), nil
}
