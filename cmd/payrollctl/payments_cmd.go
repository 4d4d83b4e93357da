package main

import (
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/currency"
	"github.com/spf13/cobra"
)

func newPaymentsCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List derived payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch format {
			case formatCSV:
				return c.services.Payroll.ExportPaymentsCSV(cmd.Context(), out)
			case formatJSON, formatTable:
			default:
				return fmt.Errorf("invalid --format %q: want table, json or csv", format)
			}

			payments, err := c.services.Payroll.ListPayments(cmd.Context())
			if err != nil {
				return err
			}
			if format == formatJSON {
				return writeJSON(out, payments)
			}

			code := c.cfg.Payroll.Currency
			tw := newTable(out, "ID", "EMPLOYEE", "TYPE", "PERIOD", "HOURS", "GROSS", "DEDUCTIONS", "NET")
			for _, p := range payments {
				row(tw,
					p.ID,
					p.EmployeeName,
					p.Type,
					p.PayPeriod,
					fmt.Sprintf("%.2f", p.TotalHoursWorked),
					currency.Format(p.GrossPay, code),
					currency.Format(p.Deductions, code),
					currency.Format(p.NetPay, code),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json or csv")
	return cmd
}
