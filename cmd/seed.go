package cmd

import (
	"fmt"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSeedCmd(svc func() *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample accounts",
		Long: `Create Account1 to Account6 with their sample balances.
Accounts that already exist are reset to the sample balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded, err := svc().Account.Seed(constants.SampleAccounts)
			if err != nil {
				return fmt.Errorf("failed to seed accounts: %w", err)
			}
			return views.RenderSeedResult(seeded)
		},
	}
}
