package usecase

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

// ZoneUseCase gère le plan de zones d'un dépôt (store documentaire).
// Un document au plus par dépôt; la mise à jour remplace le document en bloc.
type ZoneUseCase struct {
	repo repository.ZoneRepository
}

// NewZoneUseCase construit le cas d'usage.
func NewZoneUseCase(repo repository.ZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{repo: repo}
}

// GetByDepot renvoie le plan de zones d'un dépôt, ou ErrNotFound.
func (uc *ZoneUseCase) GetByDepot(ctx context.Context, depotID int64) (*entity.ZoneLayout, error) {
	layout, err := uc.repo.GetByDepot(ctx, depotID)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, domain.ErrNotFound
	}
	return layout, nil
}

// Create crée le plan de zones d'un dépôt. Échoue avec ConflictError si un
// document existe déjà (utiliser Update pour remplacer).
func (uc *ZoneUseCase) Create(ctx context.Context, depotID int64, in dto.ZonesRequest) (*entity.ZoneLayout, error) {
	if in.Zones == nil {
		return nil, domain.Validationf("Le champ zones doit être un tableau")
	}
	layout := &entity.ZoneLayout{DepotID: depotID, Zones: in.Zones}
	if err := uc.repo.Create(ctx, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// Update remplace le plan de zones en bloc, avec création si absent (upsert),
// et rafraîchit updated_at.
func (uc *ZoneUseCase) Update(ctx context.Context, depotID int64, in dto.ZonesRequest) (*entity.ZoneLayout, error) {
	if in.Zones == nil {
		return nil, domain.Validationf("Le champ zones doit être un tableau")
	}
	return uc.repo.Upsert(ctx, depotID, in.Zones)
}

// Delete supprime le plan de zones du dépôt, ou ErrNotFound s'il n'y en a pas.
func (uc *ZoneUseCase) Delete(ctx context.Context, depotID int64) error {
	return uc.repo.Delete(ctx, depotID)
}
