package account

import (
	"fmt"

	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
}

func NewListCmd(svc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc: svc(),
			}
			return runner.Run()
		},
	}
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView().Render(accounts)
}
