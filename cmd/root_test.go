package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/migrations"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  path: " + dbPath + "\nserver:\n  addr: \":7001\"\n  shutdown_timeout: 2s\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestRuntime() *runtime {
	rt := &runtime{migrations: migrations.FS, v: viper.New()}
	config.SetDefaults(rt.v)
	return rt
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	cfgPath := writeConfig(t, dbPath)
	t.Setenv("LEDGER_LOG_LEVEL", "debug")

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := loadConfig(v, cfgPath)
	require.NoError(t, err)

	assert.Equal(t, dbPath, cfg.Database.Path)
	assert.Equal(t, ":7001", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, cfgPath, cfg.ConfigPath)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	_, err := loadConfig(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSeedAndTransferCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	cfgPath := writeConfig(t, dbPath)

	run := func(args ...string) (*runtime, error) {
		rt := newTestRuntime()
		root := newRootCmd(rt)
		root.SetArgs(append([]string{"--config", cfgPath}, args...))
		err := root.Execute()
		t.Cleanup(rt.close)
		return rt, err
	}

	_, err := run("seed")
	require.NoError(t, err)

	rt, err := run("transfer", "--from", "1", "--to", "2", "--amount", "30")
	require.NoError(t, err)

	acc, err := rt.Service().Account.GetAccount(1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(70).Equal(acc.AvailableBalance))

	batchPath := filepath.Join(t.TempDir(), "batch.json")
	batch := `{"transactions":[
		{"sourceAccount":{"id":2},"destinationAccount":{"id":3},"cashAmount":2},
		{"sourceAccount":{"id":5},"destinationAccount":{"id":1},"cashAmount":500}
	]}`
	require.NoError(t, os.WriteFile(batchPath, []byte(batch), 0o644))

	rt, err = run("transfer", "--file", batchPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#2")

	// the first transfer of the file stays applied
	acc, err = rt.Service().Account.GetAccount(3)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(205).Equal(acc.AvailableBalance))

	recent, err := rt.Service().Transaction.GetRecentTransactions(10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestDBFlagOverridesConfig(t *testing.T) {
	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "from-config.db"))
	override := filepath.Join(t.TempDir(), "from-flag.db")

	rt := newTestRuntime()
	root := newRootCmd(rt)
	root.SetArgs([]string{"--config", cfgPath, "--db", override, "info"})
	require.NoError(t, root.Execute())
	t.Cleanup(rt.close)

	assert.Equal(t, override, rt.cfg.Database.Path)
	_, err := os.Stat(override)
	assert.NoError(t, err)
}

func TestAccountAndTransactionCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	cfgPath := writeConfig(t, dbPath)

	run := func(args ...string) (*runtime, error) {
		rt := newTestRuntime()
		root := newRootCmd(rt)
		root.SetArgs(append([]string{"--config", cfgPath}, args...))
		err := root.Execute()
		t.Cleanup(rt.close)
		return rt, err
	}

	rt, err := run("account", "create", "--name", "Savings", "--balance", "12.50")
	require.NoError(t, err)
	accounts, err := rt.Service().Account.GetAllAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Savings", accounts[0].Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(accounts[0].AvailableBalance))

	_, err = run("account", "create", "--name", "Dust", "--balance", "0.000000001")
	assert.Error(t, err)

	_, err = run("seed")
	require.NoError(t, err)
	_, err = run("transfer", "--from", "2", "--to", "3", "--amount", "5")
	require.NoError(t, err)

	for _, args := range [][]string{
		{"account", "list"},
		{"account", "show", "2"},
		{"transaction", "list"},
		{"transaction", "list", "--account", "3", "--limit", "5"},
		{"transaction", "show", "1"},
	} {
		_, err := run(args...)
		assert.NoError(t, err, "ledger %v", args)
	}

	_, err = run("transaction", "show", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction #99 not found")

	_, err = run("account", "show", "404")
	assert.ErrorIs(t, err, service.ErrAccountNotFound)

	_, err = run("transaction", "show", "abc")
	assert.Error(t, err)
}
