package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/utils"
)

// BuildTransactionListItems flattens log entries into table rows.
func BuildTransactionListItems(details []*service.TransactionDetail) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(details))
	for _, d := range details {
		items = append(items, TransactionListItem{
			ID:         d.ID,
			Registered: utils.FormatTimestamp(d.RegisteredTime),
			Executed:   utils.FormatTimestamp(d.ExecutedTime),
			From:       d.SourceName,
			To:         d.DestinationName,
			Amount:     utils.FormatAmount(d.CashAmount),
			Status:     constants.StatusLabel(d.Success),
		})
	}
	return items
}
