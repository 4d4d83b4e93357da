package main

import (
	"github.com/aleclahey/payroll-backend-go/internal/pkg/currency"
	"github.com/spf13/cobra"
)

func newEmployeesCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees with their resolved compensation",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := c.services.Employee.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), employees)
			}

			code := c.cfg.Payroll.Currency
			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "DEPARTMENT", "POSITION", "TYPE", "RATE")
			for _, e := range employees {
				rate := "-"
				switch {
				case e.HourlyRate != nil:
					rate = currency.Format(*e.HourlyRate, code) + "/h"
				case e.Salary != nil:
					rate = currency.Format(*e.Salary, code) + "/yr"
				}
				row(tw, e.ID, e.Name, e.Department, e.Position, e.Type, rate)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
