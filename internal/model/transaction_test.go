package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveFillsAbsentFieldsWithZero(t *testing.T) {
	src := int64(3)
	amount := decimal.RequireFromString("12.5")

	got := TransferRequest{SourceAccountID: &src, CashAmount: &amount}.Resolve()

	assert.Equal(t, int64(3), got.SourceAccountID)
	assert.Zero(t, got.DestinationAccountID)
	assert.Zero(t, got.RegisteredTime)
	assert.Zero(t, got.ExecutedTime)
	assert.True(t, amount.Equal(got.CashAmount))

	rec := got.Record()
	assert.True(t, rec.Success)
	assert.Zero(t, rec.ID)
}

func TestBatchTotal(t *testing.T) {
	a := decimal.RequireFromString("1.25")
	b := decimal.NewFromInt(30)

	batch := TransferBatch{{CashAmount: &a}, {}, {CashAmount: &b}}

	assert.True(t, decimal.RequireFromString("31.25").Equal(batch.Total()))
	assert.True(t, TransferBatch{}.Total().IsZero())
}
