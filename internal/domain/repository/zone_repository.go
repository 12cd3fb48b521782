package repository

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/domain/entity"
)

// ZoneRepository port de persistance pour les plans de zones (store
// documentaire, un document par dépôt). Jamais couplé transactionnellement au
// store relationnel.
type ZoneRepository interface {
	// GetByDepot renvoie nil, nil si aucun document n'existe pour ce dépôt.
	GetByDepot(ctx context.Context, depotID int64) (*entity.ZoneLayout, error)
	// Create renvoie une domain.ConflictError si un document existe déjà pour ce dépôt.
	Create(ctx context.Context, layout *entity.ZoneLayout) error
	// Upsert remplace le document en bloc (création si absent) et rafraîchit
	// updated_at. Renvoie le document résultant.
	Upsert(ctx context.Context, depotID int64, zones []entity.Zone) (*entity.ZoneLayout, error)
	// Delete renvoie domain.ErrNotFound si aucun document n'existe.
	Delete(ctx context.Context, depotID int64) error
}
