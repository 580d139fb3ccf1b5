package account

import (
	"fmt"
	"strconv"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account and its latest transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc(),
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account ID: %s", args[0])
	}

	acc, err := r.svc.Account.GetAccount(id)
	if err != nil {
		return err
	}
	if err := views.RenderAccountDetail(acc); err != nil {
		return err
	}

	history, err := r.svc.Transaction.GetTransactionHistory(id, constants.DefaultListLimit)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	items := views.BuildTransactionListItems(history)
	return views.NewTransactionListView().Render(items, constants.DefaultListLimit)
}
