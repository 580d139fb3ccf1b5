package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// ValidateAccountName validates a display name for a new account.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateOpeningBalance parses an opening balance and rejects negative values.
func ValidateOpeningBalance(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance '%s'", raw)
	}
	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("balance cannot be negative")
	}
	if err := utils.CheckAmountBounds(balance); err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance: %w", err)
	}
	return balance, nil
}
