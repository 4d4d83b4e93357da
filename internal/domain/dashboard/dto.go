package dashboard

import "github.com/aleclahey/payroll-backend-go/internal/domain/master/department"

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	TotalEmployees     int                             `json:"totalEmployees"`
	TotalPayroll       float64                         `json:"totalPayroll"` // sum of net pay
	PendingPayments    int                             `json:"pendingPayments"`
	PendingTimesheets  int                             `json:"pendingTimesheets"`
	TotalHoursThisWeek float64                         `json:"totalHoursThisWeek"`
	ActiveBenefits     int                             `json:"activeBenefits"`
	TotalBenefitCost   float64                         `json:"totalBenefitCost"`
	Departments        []department.DepartmentResponse `json:"departments"`
}
