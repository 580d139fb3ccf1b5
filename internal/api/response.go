package api

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/shopspring/decimal"
)

const internalErrorMessage = "Internal server error"

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Index  *int   `json:"index,omitempty"`
}

// Amount is a decimal written as a bare JSON number, the same form the
// transfer body accepts.
type Amount decimal.Decimal

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal().String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

type AccountResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AvailableCash Amount `json:"availableCash"`
}

type TransactionResponse struct {
	ID                   int64  `json:"id"`
	RegisteredTime       int64  `json:"registeredTime"`
	ExecutedTime         int64  `json:"executedTime"`
	Success              bool   `json:"success"`
	CashAmount           Amount `json:"cashAmount"`
	SourceAccountID      int64  `json:"sourceAccountId"`
	SourceAccount        string `json:"sourceAccount"`
	DestinationAccountID int64  `json:"destinationAccountId"`
	DestinationAccount   string `json:"destinationAccount"`
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: capitalize(message)})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: capitalize(message)})
}

// internalError never exposes the cause.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: internalErrorMessage})
}

func transferRejected(c *fiber.Ctx, te *service.TransferError) error {
	index := te.Index
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:  capitalize(te.Message),
		Reason: te.Kind.String(),
		Index:  &index,
	})
}

func toAccountResponse(acc *model.Account) AccountResponse {
	return AccountResponse{ID: acc.ID, Name: acc.Name, AvailableCash: Amount(acc.AvailableBalance)}
}

func toTransactionResponse(d *service.TransactionDetail) TransactionResponse {
	return TransactionResponse{
		ID:                   d.ID,
		RegisteredTime:       d.RegisteredTime,
		ExecutedTime:         d.ExecutedTime,
		Success:              d.Success,
		CashAmount:           Amount(d.CashAmount),
		SourceAccountID:      d.SourceAccountID,
		SourceAccount:        d.SourceName,
		DestinationAccountID: d.DestinationAccountID,
		DestinationAccount:   d.DestinationName,
	}
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
