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

var _ repository.DepotRepository = (*DepotRepo)(nil)

// DepotRepo implémentation de DepotRepository sur PostgreSQL.
type DepotRepo struct {
	q Querier
}

// NewDepotRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewDepotRepository(q Querier) *DepotRepo {
	return &DepotRepo{q: q}
}

// List renvoie tous les dépôts par id croissant.
func (r *DepotRepo) List(ctx context.Context) ([]*entity.Depot, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nom, adresse FROM depots ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list depots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Depot
	for rows.Next() {
		var d entity.Depot
		if err := rows.Scan(&d.ID, &d.Nom, &d.Adresse); err != nil {
			return nil, fmt.Errorf("scan depot: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetByID renvoie un dépôt, ou nil, nil s'il n'existe pas.
func (r *DepotRepo) GetByID(ctx context.Context, id int64) (*entity.Depot, error) {
	var d entity.Depot
	err := r.q.QueryRow(ctx, `SELECT id, nom, adresse FROM depots WHERE id = $1`, id).
		Scan(&d.ID, &d.Nom, &d.Adresse)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get depot: %w", err)
	}
	return &d, nil
}

// Create insère un dépôt et renseigne son ID.
func (r *DepotRepo) Create(ctx context.Context, depot *entity.Depot) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO depots (nom, adresse) VALUES ($1, $2) RETURNING id`,
		depot.Nom, depot.Adresse,
	).Scan(&depot.ID)
	if err != nil {
		return fmt.Errorf("insert depot: %w", err)
	}
	return nil
}

// Update met à jour un dépôt existant.
func (r *DepotRepo) Update(ctx context.Context, depot *entity.Depot) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE depots SET nom = $2, adresse = $3 WHERE id = $1`,
		depot.ID, depot.Nom, depot.Adresse,
	)
	if err != nil {
		return fmt.Errorf("update depot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime un dépôt. La FK produits.depot_id est ON DELETE RESTRICT :
// la violation est traduite en ConflictError pour l'appelant.
func (r *DepotRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM depots WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Message: "Des produits référencent encore ce dépôt"}
		}
		return fmt.Errorf("delete depot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
