package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meditrack/meditrack-core/internal/application/mouvement"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

var _ mouvement.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL. La connexion
// est prise au pool pour la durée de la transaction et rendue dans tous les
// cas (commit, rollback, panique) par le Rollback différé.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner sur le pool partagé.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec des repositories liés à la tx,
// puis Commit si fn renvoie nil. Le Rollback différé est sans effet après un
// Commit réussi.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produitRepo repository.ProduitRepository,
	mouvRepo repository.MouvementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProduitRepository(tx), NewMouvementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
