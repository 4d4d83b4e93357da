package main

import (
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/currency"
	"github.com/spf13/cobra"
)

func newDashboardCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.services.Dashboard.GetDashboard(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}

			code := c.cfg.Payroll.Currency
			tw := newTable(cmd.OutOrStdout(), "METRIC", "VALUE")
			row(tw, "Employees", d.TotalEmployees)
			row(tw, "Total payroll", currency.Format(d.TotalPayroll, code))
			row(tw, "Pending payments", d.PendingPayments)
			row(tw, "Pending timesheets", d.PendingTimesheets)
			row(tw, "Hours this week", fmt.Sprintf("%.2f", d.TotalHoursThisWeek))
			row(tw, "Active benefits", d.ActiveBenefits)
			row(tw, "Benefit cost", currency.Format(d.TotalBenefitCost, code))
			for _, dep := range d.Departments {
				row(tw, "Department "+dep.Name, dep.EmployeeCount)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
