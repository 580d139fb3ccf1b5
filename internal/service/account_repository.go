package service

import (
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/shopspring/decimal"
)

// AccountRepository is the single choke point for balance writes.
type AccountRepository struct {
	repo store.AccountRepository
}

func NewAccountRepository(repo store.AccountRepository) *AccountRepository {
	return &AccountRepository{repo: repo}
}

func (r *AccountRepository) Fetch(id int64) (*model.Account, error) {
	acc, err := r.repo.GetAccount(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
		}
		return nil, err
	}
	return acc, nil
}

// ApplyDelta adds delta to the current balance of account id and persists it.
// The balance is re-read first; a result below zero is refused with
// ErrWouldBeNegative and nothing is written.
func (r *AccountRepository) ApplyDelta(id int64, delta decimal.Decimal) (*model.Account, error) {
	acc, err := r.Fetch(id)
	if err != nil {
		return nil, err
	}

	next := acc.AvailableBalance.Add(delta)
	if next.IsNegative() {
		return nil, fmt.Errorf("account %d: balance %s, delta %s: %w", id, acc.AvailableBalance, delta, ErrWouldBeNegative)
	}

	if err := r.repo.SetAccountBalance(id, next); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
		}
		return nil, err
	}

	acc.AvailableBalance = next
	return acc, nil
}
