// Package payslip renders a single derived payment as a PDF document.
package payslip

import (
	"fmt"
	"io"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/currency"
	"github.com/jung-kurt/gofpdf"
)

type Payslip struct {
	PaymentID          int64
	EmployeeID         int64
	EmployeeName       string
	PayPeriod          string
	Type               string
	TotalHoursWorked   float64
	TotalOvertimeHours float64
	OvertimePay        float64
	GrossPay           float64
	DeductionType      string
	Deductions         float64
	NetPay             float64
}

type Renderer struct {
	currency string
	now      func() time.Time
}

func NewRenderer(currencyCode string) *Renderer {
	return &Renderer{currency: currencyCode, now: time.Now}
}

// Render writes p as an A4 PDF to w
func (r *Renderer) Render(w io.Writer, p Payslip) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %d", p.PaymentID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", p.EmployeeName, p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", p.PayPeriod))
	pdf.Ln(7)
	if p.Type != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Type: %s", p.Type))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", r.now().Format(time.DateOnly)))
	pdf.Ln(12)

	if p.TotalHoursWorked > 0 {
		r.row(pdf, "Hours worked", fmt.Sprintf("%.2f", p.TotalHoursWorked))
		r.row(pdf, "Overtime hours", fmt.Sprintf("%.2f", p.TotalOvertimeHours))
		r.row(pdf, "Overtime pay", currency.Format(p.OvertimePay, r.currency))
	}
	r.row(pdf, "Gross pay", currency.Format(p.GrossPay, r.currency))

	label := "Deductions"
	if p.DeductionType != "" {
		label = fmt.Sprintf("Deductions (%s)", p.DeductionType)
	}
	r.row(pdf, label, currency.Format(p.Deductions, r.currency))

	pdf.SetFont("Helvetica", "B", 12)
	r.row(pdf, "Net pay", currency.Format(p.NetPay, r.currency))

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return pdf.Output(w)
}

func (r *Renderer) row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(90, 8, label, "B", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, value, "B", 1, "R", false, 0, "")
}
