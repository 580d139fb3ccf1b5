package views

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountDetail(acc *model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Available Cash"), utils.FormatAmount(acc.AvailableBalance)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(acc *model.Account) error {
	if err := RenderAccountDetail(acc); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}

// RenderSeedResult lists the sample accounts after `ledger seed`.
func RenderSeedResult(accounts []*model.Account) error {
	if err := NewAccountListView().Render(accounts); err != nil {
		return err
	}
	pterm.Success.Printf("Seeded %d sample accounts\n", len(accounts))
	return nil
}
