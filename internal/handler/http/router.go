package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aleclahey/payroll-backend-go/internal/config"
	"github.com/aleclahey/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	app config.AppConfig,
	logger *slog.Logger,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	timesheetHandler TimesheetHandler,
	benefitHandler BenefitHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.GetDashboard)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
				r.Put("/compensation", employeeHandler.UpsertCompensation)
			})
		})
		r.Get("/personal-days", employeeHandler.ListPersonalDays)
		r.Get("/bank-information", employeeHandler.ListBankInformation)

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", masterHandler.ListDepartments)
			r.Post("/", masterHandler.CreateDepartment)
			r.Put("/{id}", masterHandler.UpdateDepartment)
		})
		r.Route("/positions", func(r chi.Router) {
			r.Get("/", masterHandler.ListPositions)
			r.Post("/", masterHandler.CreatePosition)
		})
		r.Get("/address-types", masterHandler.ListAddressTypes)
		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", masterHandler.ListAddresses)
			r.Post("/", masterHandler.CreateAddress)
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.Get("/", timesheetHandler.ListTimesheets)
			r.Post("/", timesheetHandler.CreateTimesheet)
			r.Put("/{id}", timesheetHandler.UpdateTimesheet)
			r.Delete("/{id}", timesheetHandler.DeleteTimesheet)
		})
		r.Get("/hours-worked", timesheetHandler.ListHoursWorked)

		r.Route("/benefits", func(r chi.Router) {
			r.Get("/", benefitHandler.ListBenefits)
			r.Post("/", benefitHandler.CreateBenefit)
			r.Delete("/{id}", benefitHandler.DeleteBenefit)
		})
		r.Get("/benefit-plans", benefitHandler.ListPlans)

		r.Get("/deductions", payrollHandler.ListDeductions)
		r.Route("/payroll-months", func(r chi.Router) {
			r.Get("/", payrollHandler.ListPayrollMonths)
			r.Get("/{id}/summary", payrollHandler.GetPayrollMonthSummary)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", payrollHandler.ListPayments)
			r.Post("/", payrollHandler.CreatePayment)
			r.Get("/export.csv", payrollHandler.ExportPaymentsCSV)
			r.Get("/{id}", payrollHandler.GetPayment)
			r.Get("/{id}/payslip", payrollHandler.DownloadPayslip)
		})
	})
	return r
}

// urlID reads the numeric {id} path parameter, answering 400 when it is not one
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid ID", nil)
		return 0, false
	}
	return id, true
}
