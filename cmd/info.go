package cmd

import (
	"os"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	rt *runtime
}

func NewInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				rt: rt,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.rt.cfg

	dbPath, err := app.ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	accounts, err := r.rt.Service().Account.GetAllAccounts()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:   cfg.ConfigPath,
		DBPath:       dbPath,
		DBExists:     dbExists,
		AppDataDir:   getAppDataDirOrUnknown(),
		ServerAddr:   cfg.Server.Addr,
		LogLevel:     cfg.Log.Level,
		AccountCount: len(accounts),
	}

	ui.PrintL1Title("ledger")
	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
