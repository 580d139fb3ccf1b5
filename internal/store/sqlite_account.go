package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

const accountColumns = "id, name, available_cash"

func (s *Store) CreateAccount(name string, balance decimal.Decimal) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (name, available_cash)
        VALUES (?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	if err := stmt.QueryRow(name, balance.String()).Scan(&newID); err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("failed to create account '%s': %w", name, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccount(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

func (s *Store) GetAccountByName(name string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE name = ? ORDER BY id LIMIT 1", name)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", name, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query("SELECT " + accountColumns + " FROM accounts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) SetAccountBalance(id int64, balance decimal.Decimal) error {
	res, err := s.db.Exec("UPDATE accounts SET available_cash = ? WHERE id = ?", balance.String(), id)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}

	return nil
}

// UpsertAccountByName sets the balance of the first account called name,
// creating it when there is none.
func (s *Store) UpsertAccountByName(name string, balance decimal.Decimal) (int64, error) {
	existing, err := s.GetAccountByName(name)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			return 0, err
		}
		return s.CreateAccount(name, balance)
	}

	if err := s.SetAccountBalance(existing.ID, balance); err != nil {
		return 0, err
	}
	return existing.ID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	if err := row.Scan(&acc.ID, &acc.Name, &acc.AvailableBalance); err != nil {
		return nil, err
	}
	return acc, nil
}
