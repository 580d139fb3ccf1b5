package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppWiresEngine(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "data", "ledger.db")
	cfg.Log.Level = "error"

	application, cleanup, err := NewApp(cfg, migrations.FS)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, application.Service.Executor)
	assert.Same(t, cfg, application.Service.Config)

	accounts, err := application.Service.Account.GetAllAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = os.Stat(cfg.Database.Path)
	assert.NoError(t, err)
}

func TestNewAppRejectsBadLogConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")
	cfg.Log.Level = "shouting"

	_, _, err := NewApp(cfg, migrations.FS)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/ledger.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "ledger.db"), got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("/var/lib/ledger.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ledger.db", got)

	got, err = ExpandPath("~other/ledger.db")
	require.NoError(t, err)
	assert.Equal(t, "~other/ledger.db", got)
}
