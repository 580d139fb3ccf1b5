package views

import (
	"fmt"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(detail *service.TransactionDetail) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", detail.ID)},
		{"Registered", utils.FormatTimestamp(detail.RegisteredTime)},
		{"Executed", utils.FormatTimestamp(detail.ExecutedTime)},
		{"Status", constants.StatusLabel(detail.Success)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Movement")
	amount := utils.FormatAmount(detail.CashAmount)
	movementData := pterm.TableData{
		{"Account", "Amount", "Side"},
		{accountLabel(detail.SourceName, detail.SourceAccountID), amount, "Debit -"},
		{accountLabel(detail.DestinationName, detail.DestinationAccountID), amount, "Credit +"},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(movementData).
		Render()
}

func accountLabel(name string, id int64) string {
	if name == "" {
		return fmt.Sprintf("[ID: %d]", id)
	}
	return fmt.Sprintf("%s (#%d)", name, id)
}
