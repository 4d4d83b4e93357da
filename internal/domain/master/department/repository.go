package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, d Department) (Department, error)
}
