package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	ID         int64
	Registered string
	Executed   string
	From       string
	To         string
	Amount     string
	Status     string
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem, limit int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Registered", "Executed", "From", "To", "Amount", "Status"},
	}

	for _, item := range items {
		coloredStatus := pterm.Green(item.Status)
		if item.Status != "Success" {
			coloredStatus = pterm.Red(item.Status)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			item.Registered,
			item.Executed,
			pterm.Red(item.From),
			pterm.Green(item.To),
			pterm.Blue(item.Amount),
			coloredStatus,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
