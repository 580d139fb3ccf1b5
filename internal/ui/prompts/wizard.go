package prompts

import (
	"time"

	"github.com/hance08/ledger/internal/model"
)

// RunTransferWizard collects one or more transfers interactively. Balances
// shown while choosing reflect the transfers already added to the batch.
func RunTransferWizard(accounts []*model.Account) (model.TransferBatch, error) {
	pending := make(map[int64]*model.Account, len(accounts))
	working := make([]*model.Account, 0, len(accounts))
	for _, acc := range accounts {
		cp := *acc
		pending[acc.ID] = &cp
		working = append(working, &cp)
	}

	var batch model.TransferBatch
	for {
		sourceID, err := PromptAccountSelection(working, "Transfer from:", 0)
		if err != nil {
			return nil, err
		}
		destinationID, err := PromptAccountSelection(working, "Transfer to:", sourceID)
		if err != nil {
			return nil, err
		}

		source := pending[sourceID]
		amount, err := PromptTransferAmount(source.AvailableBalance)
		if err != nil {
			return nil, err
		}

		source.AvailableBalance = source.AvailableBalance.Sub(amount)
		pending[destinationID].AvailableBalance = pending[destinationID].AvailableBalance.Add(amount)

		now := time.Now().Unix()
		batch = append(batch, model.TransferRequest{
			SourceAccountID:      &sourceID,
			DestinationAccountID: &destinationID,
			CashAmount:           &amount,
			RegisteredTime:       &now,
		})

		more, err := PromptConfirm("Add another transfer to this batch?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return batch, nil
		}
	}
}
