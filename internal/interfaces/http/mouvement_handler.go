package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/mouvement"
)

// MouvementHandler traite les requêtes HTTP du journal des mouvements.
type MouvementHandler struct {
	uc *mouvement.RegisterMouvementUseCase
}

// NewMouvementHandler construit le handler.
func NewMouvementHandler(uc *mouvement.RegisterMouvementUseCase) *MouvementHandler {
	return &MouvementHandler{uc: uc}
}

// List godoc
// @Summary      Lister tous les mouvements (du plus récent au plus ancien)
// @Tags         mouvements
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /mouvements [get]
func (h *MouvementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "Mouvement non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Enregistrer un mouvement de stock
// @Description  Met à jour la quantité du produit et journalise le mouvement
//
//	dans la même transaction. Un OUT qui rendrait le stock négatif
//	est refusé sans aucune écriture.
//
// @Tags         mouvements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMouvementRequest  true  "type (IN|OUT), quantite > 0, produit_id"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /mouvements [post]
func (h *MouvementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMouvementRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return success(c, fiber.StatusCreated, out)
}

// ListByProduit godoc
// @Summary      Lister les mouvements d'un produit (du plus récent au plus ancien)
// @Tags         mouvements
// @Produce      json
// @Param        produit_id  path  int  true  "ID du produit"
// @Success      200  {object}  dto.Envelope
// @Router       /mouvements/produit/{produit_id} [get]
func (h *MouvementHandler) ListByProduit(c *fiber.Ctx) error {
	produitID, err := c.ParamsInt("produit_id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	out, err := h.uc.ListByProduit(c.Context(), int64(produitID))
	if err != nil {
		return respondError(c, err, "Mouvement non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}
