package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountTooPrecise = fmt.Errorf("amount has more than %d decimal places", constants.MaxAmountScale)
	ErrAmountTooLarge   = fmt.Errorf("amount has more than %d integer digits", constants.MaxAmountIntegerDigits)
)

// CheckAmountBounds rejects amounts outside the supported scale and size.
// Only the exponent and digit count are inspected; the amount is never
// rescaled or formatted.
func CheckAmountBounds(amount decimal.Decimal) error {
	exp := int64(amount.Exponent())
	if exp < -constants.MaxAmountScale {
		return ErrAmountTooPrecise
	}
	if amount.IsZero() {
		return nil
	}
	if int64(amount.NumDigits())+exp > constants.MaxAmountIntegerDigits {
		return ErrAmountTooLarge
	}
	return nil
}

// FormatAmount renders at least two decimal places and never drops precision.
func FormatAmount(amount decimal.Decimal) string {
	if amount.Exponent() >= -2 {
		return amount.StringFixed(2)
	}
	return amount.String()
}

func ParseAmount(amountStr string) (decimal.Decimal, error) {
	// Handle formats: "150", "150.5", "1,250.00"
	cleaned := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", amountStr)
	}
	if err := CheckAmountBounds(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
