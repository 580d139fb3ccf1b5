package transaction

import (
	"github.com/hance08/ledger/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc func() *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Browse the transaction log",
		Long:    "Browse the append-only transaction log: list recent transfers or show one in detail.",
	}

	transactionCmd.AddCommand(NewListCmd(svc))
	transactionCmd.AddCommand(NewShowCmd(svc))

	return transactionCmd
}
