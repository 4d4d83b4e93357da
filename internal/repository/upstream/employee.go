package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type employeeRepositoryImpl struct {
	client *restapi.Client
}

func NewEmployeeRepository(client *restapi.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

func decodeEmployee(raw restapi.Record) employee.Employee {
	r := canonical(resEmployees, raw)
	return employee.Employee{
		ID:                r.Int("id"),
		FirstName:         r.String("firstName"),
		LastName:          r.String("lastName"),
		Gender:            employee.Gender(r.String("gender")),
		HireDate:          r.Time("hireDate"),
		DepartmentID:      r.IntPtr("departmentId"),
		PositionID:        r.IntPtr("positionId"),
		ManagerEmployeeID: r.IntPtr("managerEmployeeId"),
		AddressInfoID:     r.IntPtr("addressInfoId"),
		LastUpdated:       r.Time("lastUpdated"),
	}
}

func encodeEmployee(e employee.Employee) map[string]any {
	lastUpdated := formatDate(e.LastUpdated)
	if lastUpdated == nil {
		lastUpdated = today()
	}
	return map[string]any{
		"firstname":        e.FirstName,
		"lastname":         e.LastName,
		"gender":           string(e.Gender),
		"hiredate":         formatDate(e.HireDate),
		"department":       optionalID(e.DepartmentID),
		"employeeposition": optionalID(e.PositionID),
		"manageremployee":  optionalID(e.ManagerEmployeeID),
		"addressinfo":      optionalID(e.AddressInfoID),
		"lastupdated":      lastUpdated,
	}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	records, err := r.client.List(ctx, resEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(records))
	for _, rec := range records {
		employees = append(employees, decodeEmployee(rec))
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	rec, err := r.client.Get(ctx, resEmployees, id)
	if err != nil {
		if restapi.IsNotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return decodeEmployee(rec), nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	rec, err := r.client.Create(ctx, resEmployees, encodeEmployee(e))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return decodeEmployee(rec), nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	rec, err := r.client.Update(ctx, resEmployees, e.ID, encodeEmployee(e))
	if err != nil {
		if restapi.IsNotFound(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return decodeEmployee(rec), nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, resEmployees, id); err != nil {
		if restapi.IsNotFound(err) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

type personalDayRepositoryImpl struct {
	client *restapi.Client
}

func NewPersonalDayRepository(client *restapi.Client) employee.PersonalDayRepository {
	return &personalDayRepositoryImpl{client: client}
}

// List implements employee.PersonalDayRepository.
func (r *personalDayRepositoryImpl) List(ctx context.Context) ([]employee.PersonalDay, error) {
	records, err := r.client.List(ctx, resPersonalDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal days: %w", err)
	}

	days := make([]employee.PersonalDay, 0, len(records))
	for _, raw := range records {
		rec := canonical(resPersonalDays, raw)
		days = append(days, employee.PersonalDay{
			ID:         rec.Int("id"),
			EmployeeID: rec.Int("employeeId"),
			Type:       rec.String("type"),
			Paid:       rec.Bool("paid"),
			DaysOff:    rec.Float("daysOff"),
		})
	}
	return days, nil
}

type bankInformationRepositoryImpl struct {
	client *restapi.Client
}

func NewBankInformationRepository(client *restapi.Client) employee.BankInformationRepository {
	return &bankInformationRepositoryImpl{client: client}
}

// List implements employee.BankInformationRepository.
func (r *bankInformationRepositoryImpl) List(ctx context.Context) ([]employee.BankInformation, error) {
	records, err := r.client.List(ctx, resBankInformation)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank information: %w", err)
	}

	accounts := make([]employee.BankInformation, 0, len(records))
	for _, raw := range records {
		rec := canonical(resBankInformation, raw)
		accounts = append(accounts, employee.BankInformation{
			ID:                rec.Int("id"),
			EmployeeID:        rec.Int("employeeId"),
			BankInstitution:   rec.String("bankInstitution"),
			InstitutionNumber: rec.String("institutionNumber"),
			AccountNumber:     rec.String("accountNumber"),
			TransitNumber:     rec.String("transitNumber"),
		})
	}
	return accounts, nil
}
