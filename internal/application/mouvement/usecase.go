package mouvement

import (
	"context"
	"errors"
	"time"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/domain"
	"github.com/meditrack/meditrack-core/internal/domain/entity"
	"github.com/meditrack/meditrack-core/internal/domain/repository"
	"github.com/meditrack/meditrack-core/pkg/metrics"
)

// RegisterMouvementUseCase enregistre les mouvements de stock de façon
// transactionnelle : verrou de ligne (SELECT FOR UPDATE), contrôle de
// suffisance, écriture de la quantité et du journal, Commit/Rollback.
// C'est l'unique chemin d'écriture de la quantité d'un produit.
type RegisterMouvementUseCase struct {
	txRunner  TxRunner
	mouvRepo  repository.MouvementRepository // lectures hors transaction
	metrics   *metrics.Metrics
	txTimeout time.Duration
}

// NewRegisterMouvementUseCase construit le cas d'usage. metrics peut être nil
// (les compteurs sont alors ignorés); txTimeout <= 0 prend 5s.
func NewRegisterMouvementUseCase(
	txRunner TxRunner,
	mouvRepo repository.MouvementRepository,
	m *metrics.Metrics,
	txTimeout time.Duration,
) *RegisterMouvementUseCase {
	if txTimeout <= 0 {
		txTimeout = 5 * time.Second
	}
	return &RegisterMouvementUseCase{
		txRunner:  txRunner,
		mouvRepo:  mouvRepo,
		metrics:   m,
		txTimeout: txTimeout,
	}
}

// Register valide l'entrée puis exécute le mouvement dans une transaction :
//
//  1. verrou exclusif sur la ligne produit (sérialise les mouvements
//     concurrents sur un même produit, les autres produits ne sont pas bloqués)
//  2. produit absent -> ErrNotFound, rollback
//  3. nouvelle quantité = actuelle + quantite (IN) ou actuelle - quantite (OUT)
//  4. OUT qui passerait sous zéro -> InsufficientStockError, rollback
//  5. UPDATE de la quantité puis INSERT de l'écriture de journal (date serveur)
//  6. Commit; tout échec intermédiaire annule les deux écritures
//
// Un dépassement du délai de transaction est remonté comme ErrTransient.
func (uc *RegisterMouvementUseCase) Register(ctx context.Context, in dto.CreateMouvementRequest) (*dto.RegisterMouvementResponse, error) {
	if in.Type == "" || in.Quantite == 0 || in.ProduitID == 0 {
		uc.refuse("validation")
		return nil, domain.Validationf("Type, quantité et produit_id sont requis")
	}
	if in.Type != entity.MouvementTypeIN && in.Type != entity.MouvementTypeOUT {
		uc.refuse("validation")
		return nil, domain.Validationf("Le type doit être IN ou OUT")
	}
	if in.Quantite <= 0 {
		uc.refuse("validation")
		return nil, domain.Validationf("La quantité doit être positive")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	var out dto.RegisterMouvementResponse
	err := uc.txRunner.Run(ctx, func(
		produitRepo repository.ProduitRepository,
		mouvRepo repository.MouvementRepository,
	) error {
		produit, err := produitRepo.GetForUpdate(ctx, in.ProduitID)
		if err != nil {
			return err
		}
		if produit == nil {
			return domain.ErrNotFound
		}

		var nouvelleQuantite int64
		if in.Type == entity.MouvementTypeIN {
			nouvelleQuantite = produit.Quantite + in.Quantite
		} else {
			nouvelleQuantite = produit.Quantite - in.Quantite
			if nouvelleQuantite < 0 {
				return &domain.InsufficientStockError{Actuel: produit.Quantite, Demandee: in.Quantite}
			}
		}

		if err := produitRepo.UpdateQuantite(ctx, produit.ID, nouvelleQuantite); err != nil {
			return err
		}

		m := &entity.Mouvement{
			Type:      in.Type,
			Quantite:  in.Quantite,
			ProduitID: in.ProduitID,
		}
		if err := mouvRepo.Create(ctx, m); err != nil {
			return err
		}

		out = dto.RegisterMouvementResponse{
			Mouvement:        toMouvementResponse(m),
			NouvelleQuantite: nouvelleQuantite,
		}
		return nil
	})
	if err != nil {
		var insuff *domain.InsufficientStockError
		switch {
		case errors.As(err, &insuff):
			uc.refuse("stock_insuffisant")
		case errors.Is(err, domain.ErrNotFound):
			uc.refuse("produit_inconnu")
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			uc.refuse("timeout")
			return nil, domain.ErrTransient
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MouvementsTotal.WithLabelValues(in.Type).Inc()
	}
	return &out, nil
}

// List renvoie tout le journal, joint au produit, du plus récent au plus ancien.
func (uc *RegisterMouvementUseCase) List(ctx context.Context) ([]dto.MouvementResponse, error) {
	list, err := uc.mouvRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toMouvementResponses(list), nil
}

// ListByProduit renvoie les mouvements d'un produit, du plus récent au plus ancien.
func (uc *RegisterMouvementUseCase) ListByProduit(ctx context.Context, produitID int64) ([]dto.MouvementResponse, error) {
	list, err := uc.mouvRepo.ListByProduit(ctx, produitID)
	if err != nil {
		return nil, err
	}
	return toMouvementResponses(list), nil
}

func (uc *RegisterMouvementUseCase) refuse(motif string) {
	if uc.metrics != nil {
		uc.metrics.MouvementsRefuses.WithLabelValues(motif).Inc()
	}
}

func toMouvementResponse(m *entity.Mouvement) dto.MouvementResponse {
	return dto.MouvementResponse{
		ID:          m.ID,
		Type:        m.Type,
		Quantite:    m.Quantite,
		ProduitID:   m.ProduitID,
		Date:        m.Date,
		ProduitNom:  m.ProduitNom,
		ProduitCode: m.ProduitCode,
	}
}

func toMouvementResponses(list []*entity.Mouvement) []dto.MouvementResponse {
	items := make([]dto.MouvementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMouvementResponse(m))
	}
	return items
}
