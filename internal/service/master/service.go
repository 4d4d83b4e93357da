package master

import (
	"context"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/address"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/position"
	"golang.org/x/sync/errgroup"
)

type MasterService interface {
	// Department operations
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error)

	// Position operations
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)

	// Address operations
	ListAddressTypes(ctx context.Context) ([]address.AddressTypeResponse, error)
	ListAddresses(ctx context.Context) ([]address.AddressResponse, error)
	CreateAddress(ctx context.Context, req address.CreateAddressRequest) (address.AddressResponse, error)
}

type masterServiceImpl struct {
	departmentRepo  department.DepartmentRepository
	positionRepo    position.PositionRepository
	addressTypeRepo address.AddressTypeRepository
	addressRepo     address.AddressRepository
	employeeRepo    employee.EmployeeRepository
	now             func() time.Time
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	addressTypeRepo address.AddressTypeRepository,
	addressRepo address.AddressRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:  departmentRepo,
		positionRepo:    positionRepo,
		addressTypeRepo: addressTypeRepo,
		addressRepo:     addressRepo,
		employeeRepo:    employeeRepo,
		now:             time.Now,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	var (
		departments []department.Department
		employees   []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		departments, err = s.departmentRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[int64]int, len(departments))
	for _, e := range employees {
		if e.DepartmentID != nil {
			counts[*e.DepartmentID]++
		}
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp := toDepartmentResponse(d)
		resp.EmployeeCount = counts[d.ID]
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(created), nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.DepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, department.Department{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(updated), nil
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, toPositionResponse(p))
	}
	return responses, nil
}

// CreatePosition starts the position today when no fromDate is given
func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	from := s.now()
	if t, err := time.Parse(time.DateOnly, req.FromDate); err == nil {
		from = t
	}
	entity := position.Position{Title: req.Title, FromDate: &from}
	if req.ToDate != nil {
		if t, err := time.Parse(time.DateOnly, *req.ToDate); err == nil {
			entity.ToDate = &t
		}
	}

	created, err := s.positionRepo.Create(ctx, entity)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toPositionResponse(created), nil
}

func toPositionResponse(p position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:       p.ID,
		Title:    p.Title,
		FromDate: datePtr(p.FromDate),
		ToDate:   datePtr(p.ToDate),
	}
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// ==================== ADDRESS OPERATIONS ====================

func (s *masterServiceImpl) ListAddressTypes(ctx context.Context) ([]address.AddressTypeResponse, error) {
	types, err := s.addressTypeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]address.AddressTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, address.AddressTypeResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return responses, nil
}

func (s *masterServiceImpl) ListAddresses(ctx context.Context) ([]address.AddressResponse, error) {
	var (
		addresses []address.Address
		types     []address.AddressType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		addresses, err = s.addressRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		types, err = s.addressTypeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	responses := make([]address.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		responses = append(responses, toAddressResponse(a, types))
	}
	return responses, nil
}

func (s *masterServiceImpl) CreateAddress(ctx context.Context, req address.CreateAddressRequest) (address.AddressResponse, error) {
	if err := req.Validate(); err != nil {
		return address.AddressResponse{}, err
	}

	typeID := req.AddressTypeID
	created, err := s.addressRepo.Create(ctx, address.Address{
		Street:        req.Street,
		City:          req.City,
		Province:      req.Province,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		AddressTypeID: &typeID,
	})
	if err != nil {
		return address.AddressResponse{}, err
	}
	return toAddressResponse(created, nil), nil
}

// toAddressResponse prefers the type name sent by the upstream and falls
// back to the fetched address types
func toAddressResponse(a address.Address, types []address.AddressType) address.AddressResponse {
	name := a.AddressType
	if name == "" && a.AddressTypeID != nil {
		for _, t := range types {
			if t.ID == *a.AddressTypeID {
				name = t.Name
				break
			}
		}
	}
	return address.AddressResponse{
		ID:              a.ID,
		Street:          a.Street,
		City:            a.City,
		Province:        a.Province,
		PostalCode:      a.PostalCode,
		Country:         a.Country,
		AddressTypeID:   a.AddressTypeID,
		AddressTypeName: name,
	}
}
