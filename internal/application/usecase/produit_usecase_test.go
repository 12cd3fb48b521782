package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
)

type fakeProduitRepo struct {
	produits map[int64]*entity.Produit
	nextID   int64
}

func newFakeProduitRepo(produits ...*entity.Produit) *fakeProduitRepo {
	r := &fakeProduitRepo{produits: map[int64]*entity.Produit{}, nextID: 1}
	for _, p := range produits {
		cp := *p
		r.produits[p.ID] = &cp
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakeProduitRepo) List(context.Context) ([]*entity.Produit, error) {
	out := make([]*entity.Produit, 0, len(r.produits))
	for _, p := range r.produits {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProduitRepo) GetByID(_ context.Context, id int64) (*entity.Produit, error) {
	p, ok := r.produits[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProduitRepo) Create(_ context.Context, p *entity.Produit) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.produits[p.ID] = &cp
	return nil
}

func (r *fakeProduitRepo) Update(_ context.Context, p *entity.Produit) error {
	if _, ok := r.produits[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.produits[p.ID] = &cp
	return nil
}

func (r *fakeProduitRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.produits[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.produits, id)
	return nil
}

func (r *fakeProduitRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Produit, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProduitRepo) UpdateQuantite(_ context.Context, id int64, quantite int64) error {
	p, ok := r.produits[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantite = quantite
	return nil
}

func int64ptr(v int64) *int64 { return &v }
func strptr(s string) *string { return &s }

func TestProduitCreate_QuantiteZeroParDefaut(t *testing.T) {
	repo := newFakeProduitRepo()
	uc := usecase.NewProduitUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProduitRequest{
		Nom: "Paracétamol 500mg", Code: "PARA-500", DepotID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantite)
	assert.NotZero(t, out.ID)
}

func TestProduitCreate_QuantiteOuverture(t *testing.T) {
	repo := newFakeProduitRepo()
	uc := usecase.NewProduitUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProduitRequest{
		Nom: "Ibuprofène 200mg", Code: "IBU-200", DepotID: 1, Quantite: int64ptr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), out.Quantite)
}

func TestProduitCreate_Validation(t *testing.T) {
	uc := usecase.NewProduitUseCase(newFakeProduitRepo())

	var validation *domain.ValidationError

	_, err := uc.Create(context.Background(), dto.CreateProduitRequest{Code: "X", DepotID: 1})
	require.ErrorAs(t, err, &validation)

	_, err = uc.Create(context.Background(), dto.CreateProduitRequest{
		Nom: "X", Code: "X", DepotID: 1, Quantite: int64ptr(-1),
	})
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "négative")
}

// La quantité ne s'écrit jamais par PUT : seul le service de mouvements
// modifie le stock.
func TestProduitUpdate_QuantiteRefusee(t *testing.T) {
	repo := newFakeProduitRepo(&entity.Produit{ID: 1, Nom: "Paracétamol", Code: "PARA-500", Quantite: 10, DepotID: 1})
	uc := usecase.NewProduitUseCase(repo)

	_, err := uc.Update(context.Background(), 1, dto.UpdateProduitRequest{Quantite: int64ptr(99)})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "POST /mouvements")

	assert.Equal(t, int64(10), repo.produits[1].Quantite)
}

func TestProduitUpdate_ChampsPartiels(t *testing.T) {
	repo := newFakeProduitRepo(&entity.Produit{ID: 1, Nom: "Paracétamol", Code: "PARA-500", Quantite: 10, DepotID: 1})
	uc := usecase.NewProduitUseCase(repo)

	out, err := uc.Update(context.Background(), 1, dto.UpdateProduitRequest{Nom: strptr("Paracétamol 1g")})
	require.NoError(t, err)
	assert.Equal(t, "Paracétamol 1g", out.Nom)
	assert.Equal(t, "PARA-500", out.Code)
	assert.Equal(t, int64(10), out.Quantite)
}

func TestProduitUpdate_Inconnu(t *testing.T) {
	uc := usecase.NewProduitUseCase(newFakeProduitRepo())

	_, err := uc.Update(context.Background(), 42, dto.UpdateProduitRequest{Nom: strptr("X")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
