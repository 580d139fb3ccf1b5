package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hance08/ledger/internal/api"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/utils"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	From       int64
	To         int64
	Amount     string
	Registered int64
	Executed   int64
	File       string
	Yes        bool
}

type transferRunner struct {
	svc   *service.Service
	flags *transferFlags
}

func NewTransferCmd(svc func() *service.Service) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:     "transfer",
		Aliases: []string{"tr"},
		Short:   "Execute a transfer or a batch of transfers",
		Long: `Move cash between accounts.

Without flags an interactive form builds the batch. A batch file uses the
same JSON body as POST /api/executeTransaction. Transfers run in order and
stop at the first one that fails; earlier transfers stay applied.

Example:
  ledger transfer --from 1 --to 2 --amount 30
  ledger transfer --file batch.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				svc:   svc(),
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().Int64VarP(&flags.From, "from", "f", 0, "Source account ID")
	cmd.Flags().Int64VarP(&flags.To, "to", "t", 0, "Destination account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Cash amount, e.g. 30 or 12.50")
	cmd.Flags().Int64Var(&flags.Registered, "registered", 0, "Registered time as unix seconds (default now)")
	cmd.Flags().Int64Var(&flags.Executed, "executed", 0, "Executed time as unix seconds (default now)")
	cmd.Flags().StringVar(&flags.File, "file", "", "JSON batch file")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation in interactive mode")

	cmd.MarkFlagsMutuallyExclusive("file", "from")
	cmd.MarkFlagsMutuallyExclusive("file", "to")
	cmd.MarkFlagsMutuallyExclusive("file", "amount")
	cmd.MarkFlagsRequiredTogether("from", "to", "amount")

	return cmd
}

func (r *transferRunner) Run(cmd *cobra.Command) error {
	var (
		batch model.TransferBatch
		err   error
	)

	switch {
	case r.flags.File != "":
		batch, err = r.batchFromFile()
	case cmd.Flags().Changed("from"):
		batch, err = r.batchFromFlags(cmd)
	default:
		batch, err = r.batchFromPrompts()
	}
	if err != nil {
		return err
	}

	result, err := r.svc.Executor.ExecuteBatch(batch)
	if err != nil {
		var te *service.TransferError
		if errors.As(err, &te) {
			views.RenderTransferFailure(result, te)
			return fmt.Errorf("transfer batch stopped at #%d", te.Index+1)
		}
		return err
	}

	views.RenderBatchResult(result)
	return nil
}

func (r *transferRunner) batchFromFile() (model.TransferBatch, error) {
	data, err := os.ReadFile(r.flags.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	batch, err := api.DecodeBatch(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.flags.File, err)
	}
	return batch, nil
}

func (r *transferRunner) batchFromFlags(cmd *cobra.Command) (model.TransferBatch, error) {
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	registered, executed := now, now
	if cmd.Flags().Changed("registered") {
		registered = r.flags.Registered
	}
	if cmd.Flags().Changed("executed") {
		executed = r.flags.Executed
	}

	return model.TransferBatch{{
		SourceAccountID:      &r.flags.From,
		DestinationAccountID: &r.flags.To,
		CashAmount:           &amount,
		RegisteredTime:       &registered,
		ExecutedTime:         &executed,
	}}, nil
}

func (r *transferRunner) batchFromPrompts() (model.TransferBatch, error) {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return nil, err
	}
	if len(accounts) < 2 {
		return nil, fmt.Errorf("at least two accounts are needed, run `ledger seed` first")
	}

	batch, err := prompts.RunTransferWizard(accounts)
	if err != nil {
		return nil, err
	}

	if err := views.RenderTransferPreview(batch, r.svc.Account.NameOf); err != nil {
		return nil, err
	}

	if !r.flags.Yes {
		confirm, err := prompts.PromptConfirm("Execute these transfers?", true)
		if err != nil {
			return nil, err
		}
		if !confirm {
			return nil, fmt.Errorf("transfer cancelled")
		}
	}

	now := time.Now().Unix()
	for i := range batch {
		if batch[i].ExecutedTime == nil {
			batch[i].ExecutedTime = &now
		}
	}
	return batch, nil
}
