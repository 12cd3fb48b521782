package usecase

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

// ProduitUseCase cas d'usage CRUD pour les produits.
// La quantité n'est jamais écrite ici après la création : toute modification
// de stock passe par le service de mouvements, qui tient le journal.
type ProduitUseCase struct {
	repo repository.ProduitRepository
}

// NewProduitUseCase construit le cas d'usage.
func NewProduitUseCase(repo repository.ProduitRepository) *ProduitUseCase {
	return &ProduitUseCase{repo: repo}
}

// List renvoie tous les produits joints au nom de leur dépôt.
func (uc *ProduitUseCase) List(ctx context.Context) ([]dto.ProduitResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProduitResponse(p))
	}
	return items, nil
}

// GetByID renvoie un produit, ou ErrNotFound.
func (uc *ProduitUseCase) GetByID(ctx context.Context, id int64) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	out := toProduitResponse(produit)
	return &out, nil
}

// Create crée un produit. Nom, code et depot_id sont requis; la quantité
// d'ouverture vaut 0 par défaut et ne peut pas être négative.
func (uc *ProduitUseCase) Create(ctx context.Context, in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	if in.Nom == "" || in.Code == "" || in.DepotID == 0 {
		return nil, domain.Validationf("Nom, code et depot_id sont requis")
	}
	var quantite int64
	if in.Quantite != nil {
		if *in.Quantite < 0 {
			return nil, domain.Validationf("La quantité ne peut pas être négative")
		}
		quantite = *in.Quantite
	}
	produit := &entity.Produit{
		Nom:      in.Nom,
		Code:     in.Code,
		Quantite: quantite,
		DepotID:  in.DepotID,
	}
	if err := uc.repo.Create(ctx, produit); err != nil {
		return nil, err
	}
	out := toProduitResponse(produit)
	return &out, nil
}

// Update met à jour nom, code ou dépôt d'un produit. Une quantité dans le
// corps est refusée : l'écrasement direct contournerait le journal des
// mouvements et casserait l'invariant quantité = somme signée des mouvements.
func (uc *ProduitUseCase) Update(ctx context.Context, id int64, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	if in.Quantite != nil {
		return nil, domain.Validationf("La quantité ne peut pas être modifiée directement. Utilisez POST /mouvements")
	}
	produit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nom != nil {
		if *in.Nom == "" {
			return nil, domain.Validationf("Le nom ne peut pas être vide")
		}
		produit.Nom = *in.Nom
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.Validationf("Le code ne peut pas être vide")
		}
		produit.Code = *in.Code
	}
	if in.DepotID != nil {
		produit.DepotID = *in.DepotID
	}
	if err := uc.repo.Update(ctx, produit); err != nil {
		return nil, err
	}
	produit.DepotNom = "" // le nom joint peut être périmé après changement de dépôt
	out := toProduitResponse(produit)
	return &out, nil
}

// Delete supprime un produit.
func (uc *ProduitUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProduitResponse(p *entity.Produit) dto.ProduitResponse {
	return dto.ProduitResponse{
		ID:       p.ID,
		Nom:      p.Nom,
		Code:     p.Code,
		Quantite: p.Quantite,
		DepotID:  p.DepotID,
		DepotNom: p.DepotNom,
	}
}
