package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/master/address"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/position"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type departmentRepositoryImpl struct {
	client *restapi.Client
}

func NewDepartmentRepository(client *restapi.Client) department.DepartmentRepository {
	return &departmentRepositoryImpl{client: client}
}

func decodeDepartment(raw restapi.Record) department.Department {
	r := canonical(resDepartments, raw)
	return department.Department{
		ID:          r.Int("id"),
		Name:        r.String("name"),
		Description: r.String("description"),
	}
}

func encodeDepartment(d department.Department) map[string]any {
	return map[string]any{
		"departmentname": d.Name,
		"departmentdesc": d.Description,
	}
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	records, err := r.client.List(ctx, resDepartments)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]department.Department, 0, len(records))
	for _, rec := range records {
		departments = append(departments, decodeDepartment(rec))
	}
	return departments, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	rec, err := r.client.Create(ctx, resDepartments, encodeDepartment(d))
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return decodeDepartment(rec), nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	rec, err := r.client.Update(ctx, resDepartments, d.ID, encodeDepartment(d))
	if err != nil {
		if restapi.IsNotFound(err) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	return decodeDepartment(rec), nil
}

type positionRepositoryImpl struct {
	client *restapi.Client
}

func NewPositionRepository(client *restapi.Client) position.PositionRepository {
	return &positionRepositoryImpl{client: client}
}

func decodePosition(raw restapi.Record) position.Position {
	r := canonical(resPositions, raw)
	return position.Position{
		ID:       r.Int("id"),
		Title:    r.String("title"),
		FromDate: r.Time("fromDate"),
		ToDate:   r.Time("toDate"),
	}
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	records, err := r.client.List(ctx, resPositions)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positions := make([]position.Position, 0, len(records))
	for _, rec := range records {
		positions = append(positions, decodePosition(rec))
	}
	return positions, nil
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	rec, err := r.client.Create(ctx, resPositions, map[string]any{
		"title":    p.Title,
		"fromdate": formatDate(p.FromDate),
		"todate":   formatDate(p.ToDate),
	})
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return decodePosition(rec), nil
}

type addressTypeRepositoryImpl struct {
	client *restapi.Client
}

func NewAddressTypeRepository(client *restapi.Client) address.AddressTypeRepository {
	return &addressTypeRepositoryImpl{client: client}
}

// List implements address.AddressTypeRepository.
func (r *addressTypeRepositoryImpl) List(ctx context.Context) ([]address.AddressType, error) {
	records, err := r.client.List(ctx, resAddressTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to list address types: %w", err)
	}

	types := make([]address.AddressType, 0, len(records))
	for _, raw := range records {
		rec := canonical(resAddressTypes, raw)
		types = append(types, address.AddressType{
			ID:          rec.Int("id"),
			Name:        rec.String("name"),
			Description: rec.String("description"),
		})
	}
	return types, nil
}

type addressRepositoryImpl struct {
	client *restapi.Client
}

func NewAddressRepository(client *restapi.Client) address.AddressRepository {
	return &addressRepositoryImpl{client: client}
}

func decodeAddress(raw restapi.Record) address.Address {
	r := canonical(resAddresses, raw)
	return address.Address{
		ID:            r.Int("id"),
		Street:        r.String("street"),
		City:          r.String("city"),
		Province:      r.String("province"),
		PostalCode:    r.String("postalCode"),
		Country:       r.String("country"),
		AddressTypeID: r.IntPtr("addressTypeId"),
		AddressType:   r.String("addressTypeName"),
	}
}

// List implements address.AddressRepository.
func (r *addressRepositoryImpl) List(ctx context.Context) ([]address.Address, error) {
	records, err := r.client.List(ctx, resAddresses)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses := make([]address.Address, 0, len(records))
	for _, rec := range records {
		addresses = append(addresses, decodeAddress(rec))
	}
	return addresses, nil
}

// Create implements address.AddressRepository. The foreign key is written
// as "addresstype", the field name the upstream model declares.
func (r *addressRepositoryImpl) Create(ctx context.Context, a address.Address) (address.Address, error) {
	rec, err := r.client.Create(ctx, resAddresses, map[string]any{
		"street":      a.Street,
		"city":        a.City,
		"province":    a.Province,
		"postalcode":  a.PostalCode,
		"country":     a.Country,
		"addresstype": optionalID(a.AddressTypeID),
	})
	if err != nil {
		return address.Address{}, fmt.Errorf("failed to create address: %w", err)
	}
	return decodeAddress(rec), nil
}
