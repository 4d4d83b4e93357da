package position

import "context"

type PositionRepository interface {
	List(ctx context.Context) ([]Position, error)
	Create(ctx context.Context, p Position) (Position, error)
}
