package service

import (
	"testing"

	"github.com/hance08/ledger/internal/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountServiceCreateAccount(t *testing.T) {
	l := newTestLedger(t)
	svc := NewAccountService(l.Store, NewGate())

	acc, err := svc.CreateAccount("  Savings ", decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal(t, "Savings", acc.Name)
	assert.True(t, decimal.NewFromInt(25).Equal(acc.AvailableBalance))

	_, err = svc.CreateAccount("", decimal.Zero)
	assert.Error(t, err)

	_, err = svc.CreateAccount("Debt", decimal.NewFromInt(-1))
	assert.Error(t, err)

	all, err := svc.GetAllAccounts()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAccountServiceSeedResetsBalances(t *testing.T) {
	l := newTestLedger(t)
	svc := NewAccountService(l.Store, NewGate())

	seeded, err := svc.Seed(constants.SampleAccounts)
	require.NoError(t, err)
	require.Len(t, seeded, len(constants.SampleAccounts))
	assert.Equal(t, "Account1", seeded[0].Name)
	assert.True(t, decimal.NewFromInt(100).Equal(seeded[0].AvailableBalance))

	require.NoError(t, l.SetAccountBalance(seeded[1].ID, decimal.NewFromInt(1)))

	again, err := svc.Seed(constants.SampleAccounts)
	require.NoError(t, err)
	assert.Equal(t, seeded[1].ID, again[1].ID)
	l.assertBalance(t, seeded[1].ID, "52")

	all, err := svc.GetAllAccounts()
	require.NoError(t, err)
	assert.Len(t, all, len(constants.SampleAccounts))
}

func TestAccountServiceSeedRejectsBadBalance(t *testing.T) {
	l := newTestLedger(t)
	svc := NewAccountService(l.Store, NewGate())

	_, err := svc.Seed([]constants.SeedAccount{{Name: "Broken", Balance: "-3"}})
	assert.Error(t, err)

	all, err := svc.GetAllAccounts()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAccountServiceNameOf(t *testing.T) {
	l := newTestLedger(t)
	ids := l.openAccounts(t, "10")
	svc := NewAccountService(l.Store, NewGate())

	assert.Equal(t, "Account1", svc.NameOf(ids[0]))
	assert.Equal(t, "#404", svc.NameOf(404))
}
