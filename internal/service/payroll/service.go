package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/payslip"
	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
)

const unknownPeriod = "Unknown Period"

type PayrollServiceImpl struct {
	paymentRepo      payroll.PaymentRepository
	employeeRepo     employee.EmployeeRepository
	deductionRepo    compensation.DeductionRepository
	timesheetRepo    timesheet.TimesheetRepository
	hourlyRepo       compensation.HourlyRepository
	salariedRepo     compensation.SalariedRepository
	payrollMonthRepo compensation.PayrollMonthRepository
	defaultPeriod    payroll.PeriodKind
	payslips         *payslip.Renderer
	now              func() time.Time
}

func NewPayrollService(
	paymentRepo payroll.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
	deductionRepo compensation.DeductionRepository,
	timesheetRepo timesheet.TimesheetRepository,
	hourlyRepo compensation.HourlyRepository,
	salariedRepo compensation.SalariedRepository,
	payrollMonthRepo compensation.PayrollMonthRepository,
	defaultPeriod payroll.PeriodKind,
	payslips *payslip.Renderer,
) payroll.PayrollService {
	if defaultPeriod == "" {
		defaultPeriod = payroll.PeriodMonthly
	}
	return &PayrollServiceImpl{
		paymentRepo:      paymentRepo,
		employeeRepo:     employeeRepo,
		deductionRepo:    deductionRepo,
		timesheetRepo:    timesheetRepo,
		hourlyRepo:       hourlyRepo,
		salariedRepo:     salariedRepo,
		payrollMonthRepo: payrollMonthRepo,
		defaultPeriod:    defaultPeriod,
		payslips:         payslips,
		now:              time.Now,
	}
}

// snapshot holds every collection one derivation joins over
type snapshot struct {
	payments      []payroll.Payment
	employees     []employee.Employee
	deductions    []compensation.Deduction
	timesheets    []timesheet.Timesheet
	hourly        []compensation.Hourly
	salaried      []compensation.Salaried
	payrollMonths []compensation.PayrollMonth
}

// fetch loads the collections concurrently. The first failure cancels the
// others and no snapshot is returned.
func (s *PayrollServiceImpl) fetch(ctx context.Context, loadPayments func(context.Context) ([]payroll.Payment, error)) (*snapshot, error) {
	snap := &snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.payments, err = loadPayments(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.employees, err = s.employeeRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.deductions, err = s.deductionRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.timesheets, err = s.timesheetRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.hourly, err = s.hourlyRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.salaried, err = s.salariedRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.payrollMonths, err = s.payrollMonthRepo.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ended compensation records no longer pay
	now := s.now()
	snap.hourly = compensation.ActiveHourly(snap.hourly, now)
	snap.salaried = compensation.ActiveSalaried(snap.salaried, now)
	return snap, nil
}

// derive builds the view of p, false when its employee is unknown
func (s *PayrollServiceImpl) derive(p payroll.Payment, snap *snapshot) (payroll.PaymentResponse, bool) {
	emp, ok := employee.Find(p.EmployeeID, snap.employees)
	if !ok {
		slog.Debug("Dropping payment of unknown employee", "payment_id", p.ID, "employee_id", p.EmployeeID)
		return payroll.PaymentResponse{}, false
	}

	comp, err := compensation.Resolve(p.EmployeeID, snap.hourly, snap.salaried)
	if errors.Is(err, compensation.ErrCompensationNotFound) {
		comp = compensation.Record{}
	}

	deduction := compensation.FindDeduction(p.DeductionID, snap.deductions)

	period := p.PayrollPeriod
	if period == "" {
		period = s.defaultPeriod
	}

	b := payroll.ComputePayment(emp, comp, snap.timesheets, deduction, period)

	deductionType := p.DeductionType
	if deduction != nil {
		deductionType = deduction.Type
	}

	return payroll.PaymentResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       emp.FullName(),
		Type:               comp.Kind,
		GrossPay:           b.GrossPay,
		Deductions:         b.DeductionAmount,
		DeductionType:      deductionType,
		NetPay:             b.NetPay,
		PayPeriod:          payPeriod(p, snap.payrollMonths),
		OvertimePay:        b.OvertimePay,
		TotalHoursWorked:   b.TotalHoursWorked,
		TotalOvertimeHours: b.TotalOvertimeHours,
		PayrollMonthID:     p.PayrollMonthID,
		Status:             p.Status,
	}, true
}

func payPeriod(p payroll.Payment, months []compensation.PayrollMonth) string {
	if m := compensation.FindPayrollMonth(p.PayrollMonthID, months); m != nil {
		return m.Label()
	}
	if p.PayrollMonthName != "" {
		return p.PayrollMonthName
	}
	return unknownPeriod
}

func (s *PayrollServiceImpl) deriveAll(snap *snapshot) []payroll.PaymentResponse {
	views := make([]payroll.PaymentResponse, 0, len(snap.payments))
	for _, p := range snap.payments {
		if view, ok := s.derive(p, snap); ok {
			views = append(views, view)
		}
	}
	return views
}

// ListPayments implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayments(ctx context.Context) ([]payroll.PaymentResponse, error) {
	snap, err := s.fetch(ctx, s.paymentRepo.List)
	if err != nil {
		return nil, err
	}
	return s.deriveAll(snap), nil
}

// GetPayment implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayment(ctx context.Context, id int64) (payroll.PaymentResponse, error) {
	snap, err := s.fetch(ctx, func(ctx context.Context) ([]payroll.Payment, error) {
		p, err := s.paymentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []payroll.Payment{p}, nil
	})
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	view, ok := s.derive(snap.payments[0], snap)
	if !ok {
		return payroll.PaymentResponse{}, fmt.Errorf("%w: employee %d is unknown", payroll.ErrPaymentNotFound, snap.payments[0].EmployeeID)
	}
	return view, nil
}

// CreatePayment implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreatePayment(ctx context.Context, req payroll.CreatePaymentRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, req)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	snap, err := s.fetch(ctx, func(context.Context) ([]payroll.Payment, error) {
		return []payroll.Payment{created}, nil
	})
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	view, ok := s.derive(created, snap)
	if !ok {
		// the row is stored, so report it even though no pay can be derived
		slog.Warn("Created payment references an unknown employee", "payment_id", created.ID, "employee_id", created.EmployeeID)
		return underivedView(created, snap), nil
	}
	return view, nil
}

// underivedView describes a stored payment whose employee is missing
func underivedView(p payroll.Payment, snap *snapshot) payroll.PaymentResponse {
	return payroll.PaymentResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   employee.NameOf(p.EmployeeID, snap.employees),
		DeductionType:  p.DeductionType,
		PayPeriod:      payPeriod(p, snap.payrollMonths),
		PayrollMonthID: p.PayrollMonthID,
		Status:         p.Status,
	}
}

// GetPayrollMonthSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollMonthSummary(ctx context.Context, payrollMonthID int64) (payroll.PayrollMonthSummary, error) {
	snap, err := s.fetch(ctx, s.paymentRepo.List)
	if err != nil {
		return payroll.PayrollMonthSummary{}, err
	}

	month := compensation.FindPayrollMonth(&payrollMonthID, snap.payrollMonths)
	if month == nil {
		return payroll.PayrollMonthSummary{}, payroll.ErrPayrollMonthNotFound
	}

	summary := payroll.PayrollMonthSummary{
		PayrollMonthID: month.ID,
		PayrollMonth:   month.Period,
		Label:          month.Label(),
		Payments:       []payroll.PaymentResponse{},
	}

	employees := make(map[int64]struct{})
	for _, view := range s.deriveAll(snap) {
		if view.PayrollMonthID == nil || *view.PayrollMonthID != month.ID {
			continue
		}
		employees[view.EmployeeID] = struct{}{}
		summary.TotalGross += view.GrossPay
		summary.TotalDeductions += view.Deductions
		summary.TotalOvertime += view.OvertimePay
		summary.TotalNet += view.NetPay
		summary.Payments = append(summary.Payments, view)
	}

	summary.TotalEmployees = len(employees)
	summary.TotalGross = payroll.Round2(summary.TotalGross)
	summary.TotalDeductions = payroll.Round2(summary.TotalDeductions)
	summary.TotalOvertime = payroll.Round2(summary.TotalOvertime)
	summary.TotalNet = payroll.Round2(summary.TotalNet)
	return summary, nil
}

// ExportPaymentsCSV implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportPaymentsCSV(ctx context.Context, w io.Writer) error {
	views, err := s.ListPayments(ctx)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(&views, w); err != nil {
		return fmt.Errorf("failed to write payments csv: %w", err)
	}
	return nil
}

// WritePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) WritePayslip(ctx context.Context, id int64, w io.Writer) error {
	view, err := s.GetPayment(ctx, id)
	if err != nil {
		return err
	}

	return s.payslips.Render(w, payslip.Payslip{
		PaymentID:          view.ID,
		EmployeeID:         view.EmployeeID,
		EmployeeName:       view.EmployeeName,
		PayPeriod:          view.PayPeriod,
		Type:               string(view.Type),
		TotalHoursWorked:   view.TotalHoursWorked,
		TotalOvertimeHours: view.TotalOvertimeHours,
		OvertimePay:        view.OvertimePay,
		GrossPay:           view.GrossPay,
		DeductionType:      view.DeductionType,
		Deductions:         view.Deductions,
		NetPay:             view.NetPay,
	})
}
