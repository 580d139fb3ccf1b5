package views

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransferPreview shows a batch before it is submitted. nameOf maps an
// account id to a display name.
func RenderTransferPreview(batch model.TransferBatch, nameOf func(int64) string) error {
	pterm.DefaultSection.Println("Transfer Summary")

	tableData := pterm.TableData{{"#", "From", "To", "Amount"}}
	total := batch.Total()
	for i, req := range batch {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			optionalAccount(req.SourceAccountID, nameOf),
			optionalAccount(req.DestinationAccountID, nameOf),
			utils.FormatAmount(req.Amount()),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d transfers, %s in total\n", len(batch), utils.FormatAmount(total))
	return nil
}

func RenderBatchResult(result service.BatchResult) {
	if result.Applied == 0 {
		pterm.Warning.Println("Nothing to transfer")
		return
	}
	pterm.Success.Printf("%d transfers executed (transaction IDs: %v)\n", result.Applied, result.TransactionIDs)
}

// RenderTransferFailure reports the transfer that stopped a batch. Earlier
// transfers of the batch stay applied.
func RenderTransferFailure(result service.BatchResult, te *service.TransferError) {
	if result.Applied > 0 {
		pterm.Warning.Printf("%d transfers before #%d were executed and remain applied\n", result.Applied, te.Index+1)
	}

	if !te.CallerError() {
		pterm.Error.Printf("Transfer #%d failed: internal error, see the log for details\n", te.Index+1)
		return
	}

	pterm.Error.Printf("Transfer #%d rejected [%s]: %s\n", te.Index+1, te.Kind, te.Message)
}

func optionalAccount(id *int64, nameOf func(int64) string) string {
	if id == nil {
		return pterm.Gray("(missing)")
	}
	return fmt.Sprintf("%s (#%d)", nameOf(*id), *id)
}
