package mouvement

import (
	"context"

	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction du store relationnel, en
// lui passant des repositories liés à cette transaction. Commit si fn renvoie
// nil, rollback sinon : c'est la garantie "tout ou rien" du mouvement (la
// quantité du produit et le journal ne divergent jamais).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produitRepo repository.ProduitRepository,
		mouvRepo repository.MouvementRepository,
	) error) error
}
