package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aleclahey/payroll-backend-go/internal/app"
	"github.com/aleclahey/payroll-backend-go/internal/config"
	"github.com/spf13/cobra"
)

// cli is filled in by the root command before any subcommand runs
type cli struct {
	cfg      *config.Config
	services *app.Services
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Inspect derived payroll data and upsert compensation from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.services != nil {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
			slog.SetDefault(logger)

			c.cfg = cfg
			c.services = app.NewServices(cfg, logger)
			return nil
		},
	}

	cmd.AddCommand(newPaymentsCmd(c))
	cmd.AddCommand(newEmployeesCmd(c))
	cmd.AddCommand(newDashboardCmd(c))
	cmd.AddCommand(newCompensationCmd(c))
	return cmd
}

func Execute() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
