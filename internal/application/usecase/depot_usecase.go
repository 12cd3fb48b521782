package usecase

import (
	"context"
	"errors"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
	"github.com/meditrack/meditrack-core/pkg/logger"
)

// DepotUseCase cas d'usage CRUD pour les dépôts.
type DepotUseCase struct {
	repo     repository.DepotRepository
	zoneRepo repository.ZoneRepository
	log      *logger.Logger
}

// NewDepotUseCase construit le cas d'usage. zoneRepo sert uniquement au
// nettoyage du plan de zones après suppression d'un dépôt.
func NewDepotUseCase(repo repository.DepotRepository, zoneRepo repository.ZoneRepository, log *logger.Logger) *DepotUseCase {
	return &DepotUseCase{repo: repo, zoneRepo: zoneRepo, log: log}
}

// List renvoie tous les dépôts.
func (uc *DepotUseCase) List(ctx context.Context) ([]dto.DepotResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepotResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDepotResponse(d))
	}
	return items, nil
}

// GetByID renvoie un dépôt, ou ErrNotFound.
func (uc *DepotUseCase) GetByID(ctx context.Context, id int64) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// Create crée un dépôt. Nom et adresse sont requis.
func (uc *DepotUseCase) Create(ctx context.Context, in dto.CreateDepotRequest) (*dto.DepotResponse, error) {
	if in.Nom == "" || in.Adresse == "" {
		return nil, domain.Validationf("Nom et adresse sont requis")
	}
	depot := &entity.Depot{Nom: in.Nom, Adresse: in.Adresse}
	if err := uc.repo.Create(ctx, depot); err != nil {
		return nil, err
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// Update met à jour les champs fournis d'un dépôt.
func (uc *DepotUseCase) Update(ctx context.Context, id int64, in dto.UpdateDepotRequest) (*dto.DepotResponse, error) {
	depot, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if depot == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nom != nil {
		if *in.Nom == "" {
			return nil, domain.Validationf("Le nom ne peut pas être vide")
		}
		depot.Nom = *in.Nom
	}
	if in.Adresse != nil {
		if *in.Adresse == "" {
			return nil, domain.Validationf("L'adresse ne peut pas être vide")
		}
		depot.Adresse = *in.Adresse
	}
	if err := uc.repo.Update(ctx, depot); err != nil {
		return nil, err
	}
	out := toDepotResponse(depot)
	return &out, nil
}

// Delete supprime un dépôt. Refusé (ConflictError) tant que des produits le
// référencent, la contrainte étant portée par la base (ON DELETE RESTRICT).
// Le plan de zones du dépôt est ensuite supprimé au mieux : les deux stores ne
// sont jamais couplés transactionnellement, un résidu est sans effet côté API.
func (uc *DepotUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.zoneRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.log.Warn().Err(err).Int64("depot_id", id).Msg("suppression du plan de zones après suppression du dépôt")
	}
	return nil
}

func toDepotResponse(d *entity.Depot) dto.DepotResponse {
	return dto.DepotResponse{ID: d.ID, Nom: d.Nom, Adresse: d.Adresse}
}
