package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
)

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

// ProduitRepo implémentation de ProduitRepository sur PostgreSQL (pool ou tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// List renvoie tous les produits joints au nom de leur dépôt.
func (r *ProduitRepo) List(ctx context.Context) ([]*entity.Produit, error) {
	query := `
		SELECT p.id, p.nom, p.code, p.quantite, p.depot_id, COALESCE(d.nom, '')
		FROM produits p
		LEFT JOIN depots d ON p.depot_id = d.id
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produit
	for rows.Next() {
		var p entity.Produit
		if err := rows.Scan(&p.ID, &p.Nom, &p.Code, &p.Quantite, &p.DepotID, &p.DepotNom); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID renvoie un produit joint au nom du dépôt, ou nil, nil s'il n'existe pas.
func (r *ProduitRepo) GetByID(ctx context.Context, id int64) (*entity.Produit, error) {
	query := `
		SELECT p.id, p.nom, p.code, p.quantite, p.depot_id, COALESCE(d.nom, '')
		FROM produits p
		LEFT JOIN depots d ON p.depot_id = d.id
		WHERE p.id = $1`
	var p entity.Produit
	err := r.q.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Nom, &p.Code, &p.Quantite, &p.DepotID, &p.DepotNom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

// Create insère un produit et renseigne son ID. Les violations de contraintes
// sont traduites en erreurs de domaine (DuplicateError, ReferenceError).
func (r *ProduitRepo) Create(ctx context.Context, produit *entity.Produit) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO produits (nom, code, quantite, depot_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		produit.Nom, produit.Code, produit.Quantite, produit.DepotID,
	).Scan(&produit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Ce code produit existe déjà"}
		}
		if isForeignKeyViolation(err) {
			return &domain.ReferenceError{Message: "Le dépôt spécifié n'existe pas"}
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// Update met à jour nom, code et dépôt. La quantité n'est pas couverte ici :
// elle appartient au chemin transactionnel UpdateQuantite.
func (r *ProduitRepo) Update(ctx context.Context, produit *entity.Produit) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produits SET nom = $2, code = $3, depot_id = $4 WHERE id = $1`,
		produit.ID, produit.Nom, produit.Code, produit.DepotID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Ce code produit existe déjà"}
		}
		if isForeignKeyViolation(err) {
			return &domain.ReferenceError{Message: "Le dépôt spécifié n'existe pas"}
		}
		return fmt.Errorf("update produit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un produit. Le journal des mouvements étant immuable, un
// produit déjà mouvementé ne peut pas être supprimé (FK sur mouvements).
func (r *ProduitRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Message: "Des mouvements référencent ce produit, suppression impossible"}
		}
		return fmt.Errorf("delete produit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate lit la ligne produit en posant un verrou exclusif
// (SELECT ... FOR UPDATE). Sérialise les mouvements concurrents sur le même
// produit; les lignes des autres produits restent libres.
func (r *ProduitRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Produit, error) {
	query := `
		SELECT id, nom, code, quantite, depot_id
		FROM produits WHERE id = $1
		FOR UPDATE`
	var p entity.Produit
	err := r.q.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Nom, &p.Code, &p.Quantite, &p.DepotID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit for update: %w", err)
	}
	return &p, nil
}

// UpdateQuantite écrit la quantité calculée par le service de mouvements.
func (r *ProduitRepo) UpdateQuantite(ctx context.Context, id int64, quantite int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE produits SET quantite = $2 WHERE id = $1`,
		id, quantite,
	)
	if err != nil {
		return fmt.Errorf("update quantite: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
