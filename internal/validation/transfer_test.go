package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v int64) *int64 { return &v }

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateTransferReasons(t *testing.T) {
	alice := &model.Account{ID: 1, Name: "Account1", AvailableBalance: decimal.NewFromInt(100)}
	bob := &model.Account{ID: 2, Name: "Account2", AvailableBalance: decimal.NewFromInt(52)}

	tests := []struct {
		name        string
		req         model.TransferRequest
		source      *model.Account
		destination *model.Account
		reason      Reason
		field       string
	}{
		{
			name:   "missing source",
			req:    model.TransferRequest{DestinationAccountID: id(2), CashAmount: amount("1")},
			reason: ReasonMalformedRequest, field: "sourceAccount.id",
		},
		{
			name:   "missing destination",
			req:    model.TransferRequest{SourceAccountID: id(1), CashAmount: amount("1")},
			source: alice,
			reason: ReasonMalformedRequest, field: "destinationAccount.id",
		},
		{
			name:        "malformed wins over negative amount",
			req:         model.TransferRequest{SourceAccountID: id(1), CashAmount: amount("-5")},
			source:      alice,
			destination: bob,
			reason:      ReasonMalformedRequest, field: "destinationAccount.id",
		},
		{
			name:        "unknown source",
			req:         model.TransferRequest{SourceAccountID: id(9), DestinationAccountID: id(2), CashAmount: amount("1")},
			destination: bob,
			reason:      ReasonUnknownAccount, field: "sourceAccount.id",
		},
		{
			name:   "unknown destination",
			req:    model.TransferRequest{SourceAccountID: id(1), DestinationAccountID: id(9), CashAmount: amount("1")},
			source: alice,
			reason: ReasonUnknownAccount, field: "destinationAccount.id",
		},
		{
			name:   "unknown wins over insufficient funds",
			req:    model.TransferRequest{SourceAccountID: id(1), DestinationAccountID: id(9), CashAmount: amount("1000")},
			source: alice,
			reason: ReasonUnknownAccount, field: "destinationAccount.id",
		},
		{
			name:        "negative amount",
			req:         model.TransferRequest{SourceAccountID: id(1), DestinationAccountID: id(2), CashAmount: amount("-0.01")},
			source:      alice,
			destination: bob,
			reason:      ReasonNegativeAmount, field: "cashAmount",
		},
		{
			name:        "insufficient funds",
			req:         model.TransferRequest{SourceAccountID: id(1), DestinationAccountID: id(2), CashAmount: amount("150")},
			source:      alice,
			destination: bob,
			reason:      ReasonInsufficientFunds, field: "cashAmount",
		},
		{
			name:        "insufficient by a cent",
			req:         model.TransferRequest{SourceAccountID: id(2), DestinationAccountID: id(1), CashAmount: amount("52.01")},
			source:      bob,
			destination: alice,
			reason:      ReasonInsufficientFunds, field: "cashAmount",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ValidateTransfer(tt.req, tt.source, tt.destination)
			require.Error(t, err)

			var rejection *Rejection
			require.True(t, errors.As(err, &rejection))
			assert.Equal(t, tt.reason, rejection.Reason)
			assert.Equal(t, tt.field, rejection.Field)
		})
	}
}

func TestValidateTransferInsufficientFundsNamesAccounts(t *testing.T) {
	source := &model.Account{ID: 1, Name: "Account1", AvailableBalance: decimal.NewFromInt(100)}
	destination := &model.Account{ID: 2, Name: "Account2", AvailableBalance: decimal.NewFromInt(52)}

	_, err := ValidateTransfer(model.TransferRequest{
		SourceAccountID: id(1), DestinationAccountID: id(2), CashAmount: amount("150"),
	}, source, destination)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account1")
	assert.Contains(t, err.Error(), "Account2")
}

func TestValidateTransferUnknownAccountNamesCounterpart(t *testing.T) {
	known := &model.Account{ID: 1, Name: "Account1", AvailableBalance: decimal.NewFromInt(100)}

	_, err := ValidateTransfer(model.TransferRequest{
		SourceAccountID: id(1), DestinationAccountID: id(999), CashAmount: amount("1"),
	}, known, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 999 does not exist (transfer from Account1)")

	_, err = ValidateTransfer(model.TransferRequest{
		SourceAccountID: id(999), DestinationAccountID: id(1), CashAmount: amount("1"),
	}, nil, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 999 does not exist (transfer to Account1)")

	_, err = ValidateTransfer(model.TransferRequest{
		SourceAccountID: id(998), DestinationAccountID: id(999), CashAmount: amount("1"),
	}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 998 does not exist")
	assert.NotContains(t, err.Error(), "transfer")
}

func TestValidateTransferResolvesDefaults(t *testing.T) {
	source := &model.Account{ID: 1, Name: "Account1", AvailableBalance: decimal.NewFromInt(100)}
	destination := &model.Account{ID: 2, Name: "Account2", AvailableBalance: decimal.NewFromInt(52)}

	got, err := ValidateTransfer(model.TransferRequest{SourceAccountID: id(1), DestinationAccountID: id(2)}, source, destination)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.SourceAccountID)
	assert.Equal(t, int64(2), got.DestinationAccountID)
	assert.True(t, got.CashAmount.IsZero())
	assert.Zero(t, got.RegisteredTime)
	assert.Zero(t, got.ExecutedTime)
}

func TestValidateTransferExactBalance(t *testing.T) {
	source := &model.Account{ID: 1, Name: "Account1", AvailableBalance: decimal.NewFromInt(100)}
	destination := &model.Account{ID: 2, Name: "Account2"}

	got, err := ValidateTransfer(model.TransferRequest{
		SourceAccountID: id(1), DestinationAccountID: id(2), CashAmount: amount("100"),
		RegisteredTime: id(5), ExecutedTime: id(6),
	}, source, destination)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(100).Equal(got.CashAmount))
	assert.Equal(t, int64(5), got.RegisteredTime)
	assert.Equal(t, int64(6), got.ExecutedTime)
}

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName("Account1"))
	assert.Error(t, ValidateAccountName("   "))
	assert.Error(t, ValidateAccountName(strings.Repeat("a", 101)))
}

func TestValidateOpeningBalance(t *testing.T) {
	got, err := ValidateOpeningBalance("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = ValidateOpeningBalance(" 12.50 ")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got))

	_, err = ValidateOpeningBalance("-1")
	assert.Error(t, err)

	_, err = ValidateOpeningBalance("ten")
	assert.Error(t, err)

	_, err = ValidateOpeningBalance("0.000000001")
	assert.Error(t, err)
}
