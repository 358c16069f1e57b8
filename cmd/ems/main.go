package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	employeeapp "github.com/bitfutura/ems/internal/application/employee"
	"github.com/bitfutura/ems/internal/infrastructure/config"
	"github.com/bitfutura/ems/internal/infrastructure/logger"
	"github.com/bitfutura/ems/internal/infrastructure/notification"
	"github.com/bitfutura/ems/internal/infrastructure/persistence/csvfile"
	"github.com/bitfutura/ems/internal/interfaces/cli"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "Interactive employee record management",
	Long: `ems maintains a collection of employee records persisted to a CSV
file and offers add, view, update, delete, list and department report
operations through an interactive text menu.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config.toml (default: ./config.toml)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting employee management system",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("file", cfg.Storage.File),
	)

	repo := csvfile.NewRepository(cfg.Storage.File, log)

	var notifier employeeapp.Notifier
	if cfg.SMTP.Enabled {
		smtp, err := notification.NewSMTPNotifier(&cfg.SMTP, log)
		if err != nil {
			return fmt.Errorf("configure smtp notifier: %w", err)
		}
		notifier = smtp
	} else {
		notifier = notification.NewStubNotifier(log)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	service := employeeapp.NewService(ctx, repo, notifier, log)
	shell := cli.New(service, os.Stdin, os.Stdout, log)

	return shell.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
