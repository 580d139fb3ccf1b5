package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

var ErrInvalidFormat = errors.New("invalid transaction format")

type AccountRef struct {
	ID *int64 `json:"id"`
}

// TransferPayload mirrors one entry of the "transactions" array.
// Every field may be absent.
type TransferPayload struct {
	SourceAccount      *AccountRef      `json:"sourceAccount,omitempty"`
	DestinationAccount *AccountRef      `json:"destinationAccount,omitempty"`
	CashAmount         *decimal.Decimal `json:"cashAmount,omitempty"`
	RegisteredTime     *int64           `json:"registeredTime,omitempty"`
	ExecutedTime       *int64           `json:"executedTime,omitempty"`
}

type BatchPayload struct {
	Transactions *[]TransferPayload `json:"transactions"`
}

// DecodeBatch parses a batch body. A body that is not JSON or has no
// "transactions" array yields ErrInvalidFormat; missing fields inside an
// entry are left for the engine to judge.
func DecodeBatch(data []byte) (model.TransferBatch, error) {
	var payload BatchPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if payload.Transactions == nil {
		return nil, fmt.Errorf("%w: missing \"transactions\"", ErrInvalidFormat)
	}

	batch := make(model.TransferBatch, 0, len(*payload.Transactions))
	for _, p := range *payload.Transactions {
		batch = append(batch, p.Request())
	}
	return batch, nil
}

func (p TransferPayload) Request() model.TransferRequest {
	req := model.TransferRequest{
		CashAmount:     p.CashAmount,
		RegisteredTime: p.RegisteredTime,
		ExecutedTime:   p.ExecutedTime,
	}
	if p.SourceAccount != nil {
		req.SourceAccountID = p.SourceAccount.ID
	}
	if p.DestinationAccount != nil {
		req.DestinationAccountID = p.DestinationAccount.ID
	}
	return req
}
