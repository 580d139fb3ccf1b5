package service

import (
	"fmt"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
)

type TransactionService struct {
	repo store.Repository
}

func NewTransactionService(repo store.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// TransactionDetail is a log entry together with its account names.
type TransactionDetail struct {
	model.TransactionRecord
	SourceName      string
	DestinationName string
}

// GetTransactionByID retrieves a transaction with both account names resolved
func (ts *TransactionService) GetTransactionByID(txID int64) (*TransactionDetail, error) {
	rec, err := ts.repo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	return ts.detail(rec)
}

// GetRecentTransactions retrieves recent transactions across all accounts
func (ts *TransactionService) GetRecentTransactions(limit int) ([]*TransactionDetail, error) {
	records, err := ts.repo.GetAllTransactions(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return ts.details(records)
}

// GetTransactionHistory retrieves transactions in which account takes part
func (ts *TransactionService) GetTransactionHistory(accountID int64, limit int) ([]*TransactionDetail, error) {
	if _, err := NewAccountRepository(ts.repo).Fetch(accountID); err != nil {
		return nil, err
	}

	records, err := ts.repo.GetTransactionsByAccount(accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return ts.details(records)
}

func (ts *TransactionService) details(records []*model.TransactionRecord) ([]*TransactionDetail, error) {
	names := make(map[int64]string)
	out := make([]*TransactionDetail, 0, len(records))

	for _, rec := range records {
		for _, id := range []int64{rec.SourceAccountID, rec.DestinationAccountID} {
			if _, ok := names[id]; ok {
				continue
			}
			acc, err := ts.repo.GetAccount(id)
			if err != nil {
				return nil, fmt.Errorf("failed to get account for transaction %d: %w", rec.ID, err)
			}
			names[id] = acc.Name
		}

		out = append(out, &TransactionDetail{
			TransactionRecord: *rec,
			SourceName:        names[rec.SourceAccountID],
			DestinationName:   names[rec.DestinationAccountID],
		})
	}
	return out, nil
}

func (ts *TransactionService) detail(rec *model.TransactionRecord) (*TransactionDetail, error) {
	out, err := ts.details([]*model.TransactionRecord{rec})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
