package transaction

import (
	"fmt"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Account int64
	Limit   int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc func() *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions, newest first.

This command displays a table of transfers with their registered and executed
times, both accounts, the amount and the status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc(),
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Filter transactions by account ID")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run(cmd *cobra.Command) error {
	var (
		details []*service.TransactionDetail
		err     error
	)

	if cmd.Flags().Changed("account") {
		// List transactions for specific account
		details, err = r.svc.Transaction.GetTransactionHistory(r.flags.Account, r.flags.Limit)
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		pterm.Info.Printf("Showing transactions for account: #%d\n\n", r.flags.Account)
	} else {
		// List all recent transactions
		details, err = r.svc.Transaction.GetRecentTransactions(r.flags.Limit)
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
	}

	items := views.BuildTransactionListItems(details)
	return views.NewTransactionListView().Render(items, r.flags.Limit)
}
