// Command admin runs maintenance tasks against the configured store.
package main

import (
	"Henteklar/config"
	"Henteklar/services"
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the dependencies shared by the commands.
type App struct {
	ctx        context.Context
	cfg        *config.Config
	logger     *zap.Logger
	firebase   *config.Firebase
	stores     *config.Stores
	accounts   *services.AccountService
	children   *services.ChildService
	attendance *services.AttendanceService
	settings   *services.SettingsService
	visibility *services.VisibilityService
}

var app *App

func main() {
	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Henteklar admin - maintenance tasks for the kindergarten backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if app.firebase != nil {
				app.firebase.Close()
			}
			app.logger.Sync()
		},
	}

	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(seedSettingsCmd())
	rootCmd.AddCommand(importChildrenCmd())
	rootCmd.AddCommand(transitionCmd("check-in", "Check a child in"))
	rootCmd.AddCommand(transitionCmd("check-out", "Check a child out"))
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(logsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initApp() error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := config.InitLogger(cfg.AppEnv, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app = &App{ctx: context.Background(), cfg: cfg, logger: logger}

	app.firebase, err = config.InitFirebase(app.ctx, cfg, cfg.StoreDriver == config.DriverFirestore)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase: %w", err)
	}
	app.stores, err = config.OpenStores(cfg, app.firebase, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	mailer, err := services.NewEmailService(app.ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}
	identity := services.NewFirebaseIdentity(app.firebase.Auth, cfg.AppBaseURL)
	guardians := services.NewGuardianService(app.stores.Accounts, app.stores.Children, logger)

	app.accounts = services.NewAccountService(app.stores.Accounts, app.stores.Children, identity, mailer, logger)
	app.children = services.NewChildService(app.stores.Children, app.stores.History, guardians, logger)
	app.attendance = services.NewAttendanceService(app.stores.Children, app.stores.Logs, cfg.Location(), logger)
	app.settings = services.NewSettingsService(app.stores.Settings, logger)
	app.visibility = services.NewVisibilityService(guardians, app.stores.Children, app.stores.Logs, app.stores.History, cfg.Location(), logger)

	logger.Debug("admin initialized", zap.String("store", cfg.StoreDriver))
	return nil
}
