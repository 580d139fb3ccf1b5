package views

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found, run `ledger seed` or `ledger account create`")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Available Cash"}}

	for _, acc := range accounts {
		balance := utils.FormatAmount(acc.AvailableBalance)

		// Zero balances can't fund anything; show them dimmed
		coloredBalance := pterm.Green(balance)
		if acc.AvailableBalance.IsZero() {
			coloredBalance = pterm.Gray(balance)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.ID),
			acc.Name,
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
