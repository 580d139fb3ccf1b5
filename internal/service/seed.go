package service

import (
	"fmt"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
)

// Seed loads the sample accounts, resetting the balance of any that already
// exist. It holds the gate so no batch observes a half-seeded ledger.
func (as *AccountService) Seed(accounts []constants.SeedAccount) ([]*model.Account, error) {
	balances := make([]decimal.Decimal, len(accounts))
	for i, acc := range accounts {
		balance, err := validation.ValidateOpeningBalance(acc.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed account '%s': %w", acc.Name, err)
		}
		balances[i] = balance
	}

	ids := make([]int64, 0, len(accounts))
	err := as.gate.Do(func() error {
		return as.ledger.ExecTx(func(repo store.Repository) error {
			for i, acc := range accounts {
				id, err := repo.UpsertAccountByName(acc.Name, balances[i])
				if err != nil {
					return fmt.Errorf("seed account '%s': %w", acc.Name, err)
				}
				ids = append(ids, id)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	seeded := make([]*model.Account, 0, len(ids))
	for _, id := range ids {
		acc, err := as.GetAccount(id)
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, acc)
	}
	return seeded, nil
}
