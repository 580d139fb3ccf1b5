package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/utils"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	ledger store.Ledger
	gate   *Gate
}

func NewAccountService(ledger store.Ledger, gate *Gate) *AccountService {
	return &AccountService{ledger: ledger, gate: gate}
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	accounts, err := as.ledger.GetAllAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

func (as *AccountService) GetAccount(id int64) (*model.Account, error) {
	return NewAccountRepository(as.ledger).Fetch(id)
}

// CreateAccount opens a new account with a non-negative starting balance.
func (as *AccountService) CreateAccount(name string, balance decimal.Decimal) (*model.Account, error) {
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("balance cannot be negative")
	}
	if err := utils.CheckAmountBounds(balance); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}

	id, err := as.ledger.CreateAccount(strings.TrimSpace(name), balance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return as.GetAccount(id)
}

// NameOf returns the display name of account id, or "#id" when it is unknown.
func (as *AccountService) NameOf(id int64) string {
	acc, err := as.GetAccount(id)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			return fmt.Sprintf("#%d (?)", id)
		}
		return fmt.Sprintf("#%d", id)
	}
	return acc.Name
}
