package account

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name    string
	Balance string
}

// AccountCreator manages the state and logic for creating an account
type AccountCreator struct {
	name    string
	balance decimal.Decimal

	svc *service.Service
}

func NewCreateCmd(svc func() *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account with an opening balance.

Without flags the name and balance are asked interactively.

Example: ledger account create -n Savings -b 250.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{svc: svc()}

			if cmd.Flags().Changed("name") {
				return creator.FlagsMode(flags)
			}
			return creator.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Opening balance")

	return cmd
}

// FlagsMode builds an account from command-line flags
func (ac *AccountCreator) FlagsMode(flags *createFlags) error {
	if err := validation.ValidateAccountName(flags.Name); err != nil {
		return fmt.Errorf("invalid account name: %w", err)
	}

	balance, err := validation.ValidateOpeningBalance(flags.Balance)
	if err != nil {
		return err
	}

	ac.name = flags.Name
	ac.balance = balance

	acc, err := ac.Save()
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

// InteractiveMode builds an account through interactive prompts
func (ac *AccountCreator) InteractiveMode() error {
	name, err := prompts.PromptAccountName(validation.ValidateAccountName)
	if err != nil {
		return err
	}
	ac.name = name

	balanceInput, err := prompts.PromptInitialBalance(func(s string) error {
		_, err := validation.ValidateOpeningBalance(s)
		return err
	})
	if err != nil {
		return err
	}
	if ac.balance, err = validation.ValidateOpeningBalance(balanceInput); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	acc, err := ac.Save()
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

// Save persists the account to the database
func (ac *AccountCreator) Save() (*model.Account, error) {
	return ac.svc.Account.CreateAccount(ac.name, ac.balance)
}
