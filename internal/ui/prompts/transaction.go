package prompts

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/shopspring/decimal"
)

// PromptAccountSelection prompts for one account, skipping the id in exclude.
func PromptAccountSelection(accounts []*model.Account, message string, exclude int64) (int64, error) {
	var opts []huh.Option[string]
	for _, acc := range accounts {
		if acc.ID == exclude {
			continue
		}
		displayName := fmt.Sprintf("%s (Balance: %s)", acc.Name, utils.FormatAmount(acc.AvailableBalance))
		opts = append(opts, huh.NewOption(displayName, strconv.FormatInt(acc.ID, 10)))
	}

	if len(opts) == 0 {
		return 0, fmt.Errorf("no available accounts")
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(selected, 10, 64)
}

// PromptTransferAmount prompts for a positive amount not exceeding available.
func PromptTransferAmount(available decimal.Decimal) (decimal.Decimal, error) {
	raw, err := PromptAmount(
		"Amount:",
		fmt.Sprintf("Available: %s", utils.FormatAmount(available)),
		func(s string) error {
			amount, err := utils.ParseAmount(s)
			if err != nil {
				return err
			}
			if !amount.IsPositive() {
				return fmt.Errorf("amount must be greater than zero")
			}
			if amount.GreaterThan(available) {
				return fmt.Errorf("amount exceeds the available %s", utils.FormatAmount(available))
			}
			return nil
		},
	)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(raw)
}
