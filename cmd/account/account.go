package account

import (
	"github.com/hance08/ledger/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc func() *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Create accounts and show their balances.",
		Long:    `Create accounts and show their balances.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))

	return accountCmd
}
