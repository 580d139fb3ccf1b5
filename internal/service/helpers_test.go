package service

import (
	"path/filepath"
	"testing"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testLedger struct {
	*store.Store
	path string
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	s, err := store.NewStore(path, migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return &testLedger{Store: s, path: path}
}

// openAccounts creates one account per balance, named Account1, Account2, ...
func (l *testLedger) openAccounts(t *testing.T, balances ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(balances))
	for i, b := range balances {
		id, err := l.CreateAccount("Account"+string(rune('1'+i)), decimal.RequireFromString(b))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func (l *testLedger) balance(t *testing.T, id int64) decimal.Decimal {
	t.Helper()

	acc, err := l.GetAccount(id)
	require.NoError(t, err)
	return acc.AvailableBalance
}

func (l *testLedger) assertBalance(t *testing.T, id int64, want string) {
	t.Helper()

	got := l.balance(t, id)
	assert.True(t, decimal.RequireFromString(want).Equal(got), "account %d: got %s want %s", id, got, want)
}

func (l *testLedger) records(t *testing.T) []*model.TransactionRecord {
	t.Helper()

	recs, err := l.GetAllTransactions(10000)
	require.NoError(t, err)
	return recs
}

func newObservedExecutor(l *testLedger) (*TransferExecutor, *observer.ObservedLogs) {
	core, observed := observer.New(zapcore.DebugLevel)
	return NewTransferExecutor(l.Store, NewGate(), zap.New(core)), observed
}

func ptr[T any](v T) *T { return &v }

func transfer(source, destination int64, amount string) model.TransferRequest {
	return model.TransferRequest{
		SourceAccountID:      ptr(source),
		DestinationAccountID: ptr(destination),
		CashAmount:           ptr(decimal.RequireFromString(amount)),
	}
}
