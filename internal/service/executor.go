package service

import (
	"errors"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/validation"
	"go.uber.org/zap"
)

// BatchResult describes a fully applied batch.
type BatchResult struct {
	Applied        int
	TransactionIDs []int64
}

// TransferExecutor validates, applies and logs transfer batches.
type TransferExecutor struct {
	ledger store.Ledger
	gate   *Gate
	logger *zap.Logger
}

func NewTransferExecutor(ledger store.Ledger, gate *Gate, logger *zap.Logger) *TransferExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferExecutor{ledger: ledger, gate: gate, logger: logger}
}

// ExecuteBatch applies the transfers of batch in order while holding the gate.
//
// Each transfer commits on its own: the debit, the credit and the log entry
// are written in one store transaction. Processing stops at the first transfer
// that is rejected or faults, and that failure is returned as a *TransferError.
// Transfers applied before it stay applied.
func (e *TransferExecutor) ExecuteBatch(batch model.TransferBatch) (BatchResult, error) {
	e.gate.Acquire()
	defer e.gate.Release()

	e.logger.Debug("executing transfer batch", zap.Int("size", len(batch)))

	result := BatchResult{TransactionIDs: make([]int64, 0, len(batch))}
	for i, req := range batch {
		txID, err := e.executeTransfer(i, req)
		if err != nil {
			e.logFailure(err)
			return result, err
		}

		result.Applied++
		result.TransactionIDs = append(result.TransactionIDs, txID)
	}

	e.logger.Debug("transfer batch applied",
		zap.Int("size", len(batch)),
		zap.Int64s("transaction_ids", result.TransactionIDs),
	)
	return result, nil
}

func (e *TransferExecutor) executeTransfer(index int, req model.TransferRequest) (int64, error) {
	var txID int64

	err := e.ledger.ExecTx(func(repo store.Repository) error {
		accounts := NewAccountRepository(repo)

		source, destination, err := fetchParticipants(accounts, req)
		if err != nil {
			return internalFault(index, req, err)
		}

		transfer, err := validation.ValidateTransfer(req, source, destination)
		if err != nil {
			var rejection *validation.Rejection
			if errors.As(err, &rejection) {
				return rejected(index, req, rejection, source, destination)
			}
			return internalFault(index, req, err)
		}

		if _, err := accounts.ApplyDelta(transfer.SourceAccountID, transfer.CashAmount.Neg()); err != nil {
			return internalFault(index, req, err)
		}
		if _, err := accounts.ApplyDelta(transfer.DestinationAccountID, transfer.CashAmount); err != nil {
			return internalFault(index, req, err)
		}

		txID, err = repo.AppendTransaction(transfer.Record())
		if err != nil {
			return internalFault(index, req, err)
		}
		return nil
	})
	if err != nil {
		var transferErr *TransferError
		if errors.As(err, &transferErr) {
			return 0, transferErr
		}
		// begin or commit failed
		return 0, internalFault(index, req, err)
	}

	return txID, nil
}

// fetchParticipants loads both accounts of req. A missing id or an unknown
// account yields a nil account, left for the validator to report.
func fetchParticipants(accounts *AccountRepository, req model.TransferRequest) (*model.Account, *model.Account, error) {
	if req.SourceAccountID == nil || req.DestinationAccountID == nil {
		return nil, nil, nil
	}

	source, err := fetchOptional(accounts, *req.SourceAccountID)
	if err != nil {
		return nil, nil, err
	}
	destination, err := fetchOptional(accounts, *req.DestinationAccountID)
	if err != nil {
		return nil, nil, err
	}
	return source, destination, nil
}

func fetchOptional(accounts *AccountRepository, id int64) (*model.Account, error) {
	acc, err := accounts.Fetch(id)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, nil
	}
	return acc, err
}

func rejected(index int, req model.TransferRequest, rejection *validation.Rejection, source, destination *model.Account) *TransferError {
	te := newTransferError(kindFromReason(rejection.Reason), index, req)
	te.Message = rejection.Message
	te.Err = rejection
	if source != nil {
		te.SourceName = source.Name
	}
	if destination != nil {
		te.DestinationName = destination.Name
	}
	return te
}

func internalFault(index int, req model.TransferRequest, err error) *TransferError {
	te := newTransferError(KindInternalFault, index, req)
	te.Err = err
	return te
}

func newTransferError(kind Kind, index int, req model.TransferRequest) *TransferError {
	te := &TransferError{Kind: kind, Index: index}
	if req.SourceAccountID != nil {
		te.SourceAccountID = *req.SourceAccountID
	}
	if req.DestinationAccountID != nil {
		te.DestinationAccountID = *req.DestinationAccountID
	}
	return te
}

func (e *TransferExecutor) logFailure(err error) {
	var te *TransferError
	if !errors.As(err, &te) {
		e.logger.Error("transfer batch failed", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Int("index", te.Index),
		zap.String("kind", te.Kind.String()),
		zap.Int64("source_account_id", te.SourceAccountID),
		zap.Int64("destination_account_id", te.DestinationAccountID),
	}

	if te.CallerError() {
		e.logger.Info("transfer rejected", append(fields, zap.String("reason", te.Message))...)
		return
	}
	e.logger.Error("transfer faulted", append(fields, zap.Error(te.Err))...)
}
