package repository

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/domain/entity"
)

// MouvementRepository port de persistance pour le journal des mouvements.
// Journal en insertion seule : aucune opération de modification ni de
// suppression n'est exposée.
type MouvementRepository interface {
	// Create insère l'écriture et renseigne ID et Date (attribués par le serveur).
	Create(ctx context.Context, mouvement *entity.Mouvement) error
	// List renvoie tous les mouvements joints au produit (nom, code), du plus
	// récent au plus ancien.
	List(ctx context.Context) ([]*entity.Mouvement, error)
	// ListByProduit renvoie les mouvements d'un produit, du plus récent au plus ancien.
	ListByProduit(ctx context.Context, produitID int64) ([]*entity.Mouvement, error)
}
