package store

import (
	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	GetAccount(id int64) (*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	SetAccountBalance(id int64, balance decimal.Decimal) error
	CreateAccount(name string, balance decimal.Decimal) (int64, error)
	UpsertAccountByName(name string, balance decimal.Decimal) (int64, error)
}

type TransactionRepository interface {
	AppendTransaction(rec model.TransactionRecord) (int64, error)
	GetTransactionByID(id int64) (*model.TransactionRecord, error)
	GetAllTransactions(limit int) ([]*model.TransactionRecord, error)
	GetTransactionsByAccount(accountID int64, limit int) ([]*model.TransactionRecord, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository
}

// Ledger is a Repository that can group calls into one atomic unit.
type Ledger interface {
	Repository
	ExecTx(fn func(Repository) error) error
	Close() error
}
