package repository

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/domain/entity"
)

// ProduitRepository port de persistance pour les produits.
// Les lectures List/GetByID joignent le nom du dépôt.
type ProduitRepository interface {
	List(ctx context.Context) ([]*entity.Produit, error)
	GetByID(ctx context.Context, id int64) (*entity.Produit, error)
	// Create renvoie une domain.DuplicateError si le code existe déjà et
	// une domain.ReferenceError si le dépôt n'existe pas.
	Create(ctx context.Context, produit *entity.Produit) error
	Update(ctx context.Context, produit *entity.Produit) error
	Delete(ctx context.Context, id int64) error

	// GetForUpdate lit un produit en posant un verrou exclusif de ligne
	// (SELECT ... FOR UPDATE). À n'appeler que depuis une transaction : c'est
	// l'unique mécanisme de sérialisation des mouvements concurrents sur un
	// même produit. Renvoie nil, nil si le produit n'existe pas.
	GetForUpdate(ctx context.Context, id int64) (*entity.Produit, error)
	// UpdateQuantite écrit la nouvelle quantité. À n'appeler que depuis la
	// transaction de mouvement, sous le verrou de GetForUpdate.
	UpdateQuantite(ctx context.Context, id int64, quantite int64) error
}
