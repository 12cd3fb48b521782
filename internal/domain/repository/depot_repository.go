package repository

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/domain/entity"
)

// DepotRepository port de persistance pour les dépôts.
type DepotRepository interface {
	List(ctx context.Context) ([]*entity.Depot, error)
	GetByID(ctx context.Context, id int64) (*entity.Depot, error)
	Create(ctx context.Context, depot *entity.Depot) error
	Update(ctx context.Context, depot *entity.Depot) error
	// Delete renvoie domain.ErrNotFound si le dépôt n'existe pas et une
	// domain.ConflictError si des produits le référencent encore.
	Delete(ctx context.Context, id int64) error
}
