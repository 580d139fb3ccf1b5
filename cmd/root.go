package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/ledger/cmd/account"
	"github.com/hance08/ledger/cmd/transaction"
	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/errhandler"
	"github.com/hance08/ledger/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "LEDGER"

// runtime holds what every subcommand shares. The app is built after flag
// parsing so --config and bound flags are honoured.
type runtime struct {
	migrations fs.FS
	v          *viper.Viper
	cfgFile    string

	cfg     *config.Config
	app     *app.App
	cleanup func()
}

func (rt *runtime) Service() *service.Service {
	return rt.app.Service
}

func (rt *runtime) init() error {
	cfg, err := loadConfig(rt.v, rt.cfgFile)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	application, cleanup, err := app.NewApp(cfg, rt.migrations)
	if err != nil {
		return err
	}
	rt.app = application
	rt.cleanup = cleanup
	return nil
}

func (rt *runtime) close() {
	if rt.cleanup != nil {
		rt.cleanup()
	}
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rt := &runtime{migrations: migrations, v: viper.New()}
	config.SetDefaults(rt.v)

	rootCmd := newRootCmd(rt)
	err := rootCmd.Execute()
	rt.close()

	if err != nil {
		errhandler.HandleError(err)
	}
}

func newRootCmd(rt *runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "ledger executes batches of account-to-account cash transfers",
		Long: `ledger keeps account balances and an append-only transaction log in a
local sqlite database. Transfer batches run one at a time, either from the
HTTP API (ledger serve) or directly from the command line.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().String("db", "", "database file path (overrides database.path)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = rt.v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = rt.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(account.NewAccountCmd(rt.Service))
	rootCmd.AddCommand(transaction.NewTransactionCmd(rt.Service))

	rootCmd.AddCommand(NewServeCmd(rt))
	rootCmd.AddCommand(NewTransferCmd(rt.Service))
	rootCmd.AddCommand(NewSeedCmd(rt.Service))
	rootCmd.AddCommand(NewInfoCmd(rt))

	return rootCmd
}

// loadConfig reads the config file, LEDGER_* env vars and bound flags into a
// Config. Without an explicit file the default one is created on first run.
func loadConfig(v *viper.Viper, cfgFile string) (*config.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
