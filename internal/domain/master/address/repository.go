package address

import "context"

type AddressTypeRepository interface {
	List(ctx context.Context) ([]AddressType, error)
}

type AddressRepository interface {
	List(ctx context.Context) ([]Address, error)
	Create(ctx context.Context, a Address) (Address, error)
}
