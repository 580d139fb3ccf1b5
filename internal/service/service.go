package service

import (
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Config      *config.Config
	Account     *AccountService
	Transaction *TransactionService
	Executor    *TransferExecutor
}

// NewService wires every service around one ledger and one gate. Anything
// that changes balances must share gate with the executor.
func NewService(ledger store.Ledger, gate *Gate, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Config:      cfg,
		Account:     NewAccountService(ledger, gate),
		Transaction: NewTransactionService(ledger),
		Executor:    NewTransferExecutor(ledger, gate, logger),
	}
}
