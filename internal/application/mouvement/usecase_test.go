package mouvement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/mouvement"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
	"github.com/meditrack/meditrack-core/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
//
// fakeStore simule le store relationnel; fakeTxRunner reproduit la sémantique
// transactionnelle en restaurant un instantané de l'état quand le callback
// échoue (rollback), ce qui permet de vérifier le "tout ou rien" du mouvement.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	produits   map[int64]*entity.Produit
	mouvements []*entity.Mouvement
	nextMouvID int64
	failCreate error // forcé sur l'insertion de journal
	failUpdate error // forcé sur l'écriture de quantité
}

func newFakeStore(produits ...*entity.Produit) *fakeStore {
	s := &fakeStore{produits: map[int64]*entity.Produit{}, nextMouvID: 1}
	for _, p := range produits {
		cp := *p
		s.produits[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{produits: map[int64]*entity.Produit{}, nextMouvID: s.nextMouvID}
	for id, p := range s.produits {
		c := *p
		cp.produits[id] = &c
	}
	cp.mouvements = append(cp.mouvements, s.mouvements...)
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.produits = from.produits
	s.mouvements = from.mouvements
	s.nextMouvID = from.nextMouvID
}

type fakeProduitRepo struct{ s *fakeStore }

func (r *fakeProduitRepo) List(context.Context) ([]*entity.Produit, error) { return nil, nil }
func (r *fakeProduitRepo) GetByID(_ context.Context, id int64) (*entity.Produit, error) {
	return r.s.produits[id], nil
}
func (r *fakeProduitRepo) Create(context.Context, *entity.Produit) error { return nil }
func (r *fakeProduitRepo) Update(context.Context, *entity.Produit) error { return nil }
func (r *fakeProduitRepo) Delete(context.Context, int64) error           { return nil }

func (r *fakeProduitRepo) GetForUpdate(_ context.Context, id int64) (*entity.Produit, error) {
	p, ok := r.s.produits[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProduitRepo) UpdateQuantite(_ context.Context, id int64, quantite int64) error {
	if r.s.failUpdate != nil {
		return r.s.failUpdate
	}
	p, ok := r.s.produits[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantite = quantite
	return nil
}

type fakeMouvementRepo struct{ s *fakeStore }

func (r *fakeMouvementRepo) Create(_ context.Context, m *entity.Mouvement) error {
	if r.s.failCreate != nil {
		return r.s.failCreate
	}
	m.ID = r.s.nextMouvID
	r.s.nextMouvID++
	m.Date = time.Now()
	cp := *m
	r.s.mouvements = append(r.s.mouvements, &cp)
	return nil
}

func (r *fakeMouvementRepo) List(context.Context) ([]*entity.Mouvement, error) {
	out := make([]*entity.Mouvement, 0, len(r.s.mouvements))
	for i := len(r.s.mouvements) - 1; i >= 0; i-- {
		out = append(out, r.s.mouvements[i])
	}
	return out, nil
}

func (r *fakeMouvementRepo) ListByProduit(_ context.Context, produitID int64) ([]*entity.Mouvement, error) {
	var out []*entity.Mouvement
	for i := len(r.s.mouvements) - 1; i >= 0; i-- {
		if r.s.mouvements[i].ProduitID == produitID {
			out = append(out, r.s.mouvements[i])
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	s        *fakeStore
	beginErr error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	produitRepo repository.ProduitRepository,
	mouvRepo repository.MouvementRepository,
) error) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.s.snapshot()
	if err := fn(&fakeProduitRepo{r.s}, &fakeMouvementRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func newUseCase(t *testing.T, s *fakeStore) *mouvement.RegisterMouvementUseCase {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return mouvement.NewRegisterMouvementUseCase(&fakeTxRunner{s: s}, &fakeMouvementRepo{s}, m, time.Second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EntreeAugmenteLeStock(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Nom: "Paracétamol", Code: "PARA-500", Quantite: 0, DepotID: 1})
	uc := newUseCase(t, s)

	out, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "IN", Quantite: 5, ProduitID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.NouvelleQuantite)
	assert.Equal(t, "IN", out.Mouvement.Type)
	assert.Equal(t, int64(5), out.Mouvement.Quantite)
	assert.NotZero(t, out.Mouvement.ID)
	assert.False(t, out.Mouvement.Date.IsZero(), "la date doit être attribuée par le store")

	assert.Equal(t, int64(5), s.produits[1].Quantite)
	require.Len(t, s.mouvements, 1)
}

func TestRegister_SortieDiminueLeStock(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: 5, DepotID: 1})
	uc := newUseCase(t, s)

	out, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "OUT", Quantite: 3, ProduitID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.NouvelleQuantite)
	assert.Equal(t, int64(2), s.produits[1].Quantite)
	require.Len(t, s.mouvements, 1)
	assert.Equal(t, "OUT", s.mouvements[0].Type)
}

// Un OUT qui rendrait le stock négatif ne commite jamais : la quantité reste
// celle d'avant et aucune écriture de journal n'apparaît.
func TestRegister_StockInsuffisant(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: 4, DepotID: 1})
	uc := newUseCase(t, s)

	out, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "OUT", Quantite: 10, ProduitID: 1})
	require.Error(t, err)
	assert.Nil(t, out)

	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, int64(4), insuff.Actuel)
	assert.Equal(t, int64(10), insuff.Demandee)
	assert.Contains(t, insuff.Error(), "4")
	assert.Contains(t, insuff.Error(), "10")

	assert.Equal(t, int64(4), s.produits[1].Quantite)
	assert.Empty(t, s.mouvements)
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateMouvementRequest
	}{
		{"type manquant", dto.CreateMouvementRequest{Quantite: 5, ProduitID: 1}},
		{"type inconnu", dto.CreateMouvementRequest{Type: "TRANSFER", Quantite: 5, ProduitID: 1}},
		{"quantite nulle", dto.CreateMouvementRequest{Type: "IN", Quantite: 0, ProduitID: 1}},
		{"quantite negative", dto.CreateMouvementRequest{Type: "OUT", Quantite: -3, ProduitID: 1}},
		{"produit manquant", dto.CreateMouvementRequest{Type: "IN", Quantite: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newFakeStore(&entity.Produit{ID: 1, Quantite: 10, DepotID: 1})
			uc := newUseCase(t, s)

			_, err := uc.Register(context.Background(), tc.in)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)

			// Aucune écriture sur une entrée invalide
			assert.Equal(t, int64(10), s.produits[1].Quantite)
			assert.Empty(t, s.mouvements)
		})
	}
}

func TestRegister_ProduitInconnu(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(t, s)

	_, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "IN", Quantite: 5, ProduitID: 42})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.mouvements)
}

// L'échec de l'insertion de journal annule aussi l'écriture de quantité :
// les deux écritures sont solidaires.
func TestRegister_EchecDuJournalAnnuleTout(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: 7, DepotID: 1})
	s.failCreate = errors.New("insert mouvement: connexion perdue")
	uc := newUseCase(t, s)

	_, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "OUT", Quantite: 2, ProduitID: 1})
	require.Error(t, err)

	assert.Equal(t, int64(7), s.produits[1].Quantite, "la quantité doit être restaurée par le rollback")
	assert.Empty(t, s.mouvements)
}

func TestRegister_TimeoutDevientTransitoire(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: 7, DepotID: 1})
	uc := mouvement.NewRegisterMouvementUseCase(
		&fakeTxRunner{s: s, beginErr: context.DeadlineExceeded},
		&fakeMouvementRepo{s}, nil, time.Second,
	)

	_, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "IN", Quantite: 1, ProduitID: 1})
	require.ErrorIs(t, err, domain.ErrTransient)

	var insuff *domain.InsufficientStockError
	assert.False(t, errors.As(err, &insuff), "un timeout ne doit jamais passer pour un refus de stock")
}

// Invariant du journal : quantité finale = quantité initiale + somme signée
// des mouvements commités, dans l'ordre; les refus ne comptent pas.
func TestRegister_SommeSigneeDuJournal(t *testing.T) {
	const initiale = int64(10)
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: initiale, DepotID: 1})
	uc := newUseCase(t, s)

	seq := []dto.CreateMouvementRequest{
		{Type: "IN", Quantite: 5, ProduitID: 1},
		{Type: "OUT", Quantite: 3, ProduitID: 1},
		{Type: "OUT", Quantite: 100, ProduitID: 1}, // refusé
		{Type: "IN", Quantite: 2, ProduitID: 1},
		{Type: "OUT", Quantite: 14, ProduitID: 1},
	}
	for _, in := range seq {
		_, _ = uc.Register(context.Background(), in)
	}

	var somme int64
	for _, m := range s.mouvements {
		if m.Type == entity.MouvementTypeIN {
			somme += m.Quantite
		} else {
			somme -= m.Quantite
		}
	}
	assert.Equal(t, initiale+somme, s.produits[1].Quantite)
	assert.Len(t, s.mouvements, 4, "le mouvement refusé ne doit pas être journalisé")
	assert.Equal(t, int64(0), s.produits[1].Quantite)
}

func TestListByProduit_PlusRecentDAbord(t *testing.T) {
	s := newFakeStore(&entity.Produit{ID: 1, Quantite: 0, DepotID: 1})
	uc := newUseCase(t, s)

	_, err := uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "IN", Quantite: 5, ProduitID: 1})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), dto.CreateMouvementRequest{Type: "OUT", Quantite: 3, ProduitID: 1})
	require.NoError(t, err)

	list, err := uc.ListByProduit(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "OUT", list[0].Type)
	assert.Equal(t, "IN", list[1].Type)
}
