package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/ledger/internal/model"
)

const (
	defaultListLimit   = 100
	transactionColumns = "id, registered_time, executed_time, success, cash_amount, source_account_id, destination_account_id"
)

// AppendTransaction inserts rec and returns the id assigned to it.
// It relies on the caller to wrap it in ExecTx together with the balance updates.
func (s *Store) AppendTransaction(rec model.TransactionRecord) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO transactions
            (registered_time, executed_time, success, cash_amount, source_account_id, destination_account_id)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		rec.RegisteredTime,
		rec.ExecutedTime,
		rec.Success,
		rec.CashAmount.String(),
		rec.SourceAccountID,
		rec.DestinationAccountID,
	).Scan(&newID)
	if err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("failed to insert transaction (%d -> %d): %w",
				rec.SourceAccountID, rec.DestinationAccountID, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id int64) (*model.TransactionRecord, error) {
	row := s.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)

	rec, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return rec, nil
}

func (s *Store) GetAllTransactions(limit int) ([]*model.TransactionRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
        SELECT `+transactionColumns+`
        FROM transactions
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) GetTransactionsByAccount(accountID int64, limit int) ([]*model.TransactionRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE source_account_id = ? OR destination_account_id = ?
        ORDER BY id DESC
        LIMIT ?
    `, accountID, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func scanTransaction(row rowScanner) (*model.TransactionRecord, error) {
	rec := &model.TransactionRecord{}
	err := row.Scan(
		&rec.ID,
		&rec.RegisteredTime,
		&rec.ExecutedTime,
		&rec.Success,
		&rec.CashAmount,
		&rec.SourceAccountID,
		&rec.DestinationAccountID,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func scanTransactions(rows *sql.Rows) ([]*model.TransactionRecord, error) {
	var records []*model.TransactionRecord
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return records, nil
}
