package postgres

import (
	"context"
	"fmt"

	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

// MouvementRepo implémentation de MouvementRepository sur PostgreSQL (pool ou tx).
// Journal en insertion seule : aucun UPDATE ni DELETE sur mouvements.
type MouvementRepo struct {
	q Querier
}

// NewMouvementRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewMouvementRepository(q Querier) *MouvementRepo {
	return &MouvementRepo{q: q}
}

// Create insère l'écriture; id et date (now() serveur) sont renvoyés par la base.
func (r *MouvementRepo) Create(ctx context.Context, m *entity.Mouvement) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO mouvements (type, quantite, produit_id) VALUES ($1, $2, $3) RETURNING id, date`,
		m.Type, m.Quantite, m.ProduitID,
	).Scan(&m.ID, &m.Date)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}
	return nil
}

// List renvoie tout le journal joint au produit, du plus récent au plus ancien.
func (r *MouvementRepo) List(ctx context.Context) ([]*entity.Mouvement, error) {
	query := `
		SELECT m.id, m.type, m.quantite, m.produit_id, m.date,
		       COALESCE(p.nom, ''), COALESCE(p.code, '')
		FROM mouvements m
		LEFT JOIN produits p ON m.produit_id = p.id
		ORDER BY m.date DESC, m.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mouvement
	for rows.Next() {
		var m entity.Mouvement
		if err := rows.Scan(&m.ID, &m.Type, &m.Quantite, &m.ProduitID, &m.Date, &m.ProduitNom, &m.ProduitCode); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByProduit renvoie les mouvements d'un produit, du plus récent au plus ancien.
func (r *MouvementRepo) ListByProduit(ctx context.Context, produitID int64) ([]*entity.Mouvement, error) {
	query := `
		SELECT id, type, quantite, produit_id, date
		FROM mouvements WHERE produit_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, produitID)
	if err != nil {
		return nil, fmt.Errorf("list mouvements produit: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mouvement
	for rows.Next() {
		var m entity.Mouvement
		if err := rows.Scan(&m.ID, &m.Type, &m.Quantite, &m.ProduitID, &m.Date); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
