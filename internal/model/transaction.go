package model

import "github.com/shopspring/decimal"

// TransactionRecord is one row of the append-only transfer log.
type TransactionRecord struct {
	ID                   int64
	RegisteredTime       int64
	ExecutedTime         int64
	Success              bool
	CashAmount           decimal.Decimal
	SourceAccountID      int64
	DestinationAccountID int64
}

// TransferRequest is a proposed transfer as submitted by a caller.
// Nil fields were absent from the input.
type TransferRequest struct {
	SourceAccountID      *int64
	DestinationAccountID *int64
	CashAmount           *decimal.Decimal
	RegisteredTime       *int64
	ExecutedTime         *int64
}

// TransferBatch is processed in order under a single gate hold.
type TransferBatch []TransferRequest

// Transfer is a TransferRequest with every optional field resolved.
type Transfer struct {
	SourceAccountID      int64
	DestinationAccountID int64
	CashAmount           decimal.Decimal
	RegisteredTime       int64
	ExecutedTime         int64
}

// Amount returns the requested cash amount, zero when absent.
func (r TransferRequest) Amount() decimal.Decimal {
	if r.CashAmount == nil {
		return decimal.Zero
	}
	return *r.CashAmount
}

func (r TransferRequest) Resolve() Transfer {
	t := Transfer{CashAmount: r.Amount()}
	if r.SourceAccountID != nil {
		t.SourceAccountID = *r.SourceAccountID
	}
	if r.DestinationAccountID != nil {
		t.DestinationAccountID = *r.DestinationAccountID
	}
	if r.RegisteredTime != nil {
		t.RegisteredTime = *r.RegisteredTime
	}
	if r.ExecutedTime != nil {
		t.ExecutedTime = *r.ExecutedTime
	}
	return t
}

// Record builds the successful log entry for an applied transfer.
func (t Transfer) Record() TransactionRecord {
	return TransactionRecord{
		RegisteredTime:       t.RegisteredTime,
		ExecutedTime:         t.ExecutedTime,
		Success:              true,
		CashAmount:           t.CashAmount,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
	}
}

// Total sums the requested amounts of the batch.
func (b TransferBatch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range b {
		total = total.Add(r.Amount())
	}
	return total
}
