package main

import (
	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/spf13/cobra"
)

func newCompensationCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compensation",
		Short: "Manage employee compensation records",
	}
	cmd.AddCommand(newCompensationUpsertCmd(c))
	return cmd
}

func newCompensationUpsertCmd(c *cli) *cobra.Command {
	var (
		employeeID int64
		kind       string
		amount     float64
	)

	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or update the compensation record of one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.services.Compensation.UpsertForEmployee(cmd.Context(), employeeID, compensation.Kind(kind), amount)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), compensation.NewUpsertResponse(result)); err != nil {
				return err
			}
			return result.Err()
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID (required)")
	cmd.Flags().StringVar(&kind, "kind", string(compensation.KindHourly), "hourly or salaried")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Hourly rate or yearly salary (required)")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
