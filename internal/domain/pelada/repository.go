package pelada

import "context"

// Repository describes session persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Pelada, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Pelada, error)
	GetByID(ctx context.Context, peladaID string) (Pelada, bool, error)
	Create(ctx context.Context, item Pelada) error
	Update(ctx context.Context, item Pelada) error
	Delete(ctx context.Context, peladaID string) error
}
