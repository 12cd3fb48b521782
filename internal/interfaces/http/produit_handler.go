package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
)

// ProduitHandler traite les requêtes HTTP des produits.
type ProduitHandler struct {
	uc *usecase.ProduitUseCase
}

// NewProduitHandler construit le handler.
func NewProduitHandler(uc *usecase.ProduitUseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// List godoc
// @Summary      Lister les produits (avec le nom du dépôt)
// @Tags         produits
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /produits [get]
func (h *ProduitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtenir un produit
// @Tags         produits
// @Produce      json
// @Param        id   path  int  true  "ID du produit"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /produits/{id} [get]
func (h *ProduitHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Créer un produit
// @Tags         produits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProduitRequest  true  "nom, code, depot_id; quantite optionnelle (0 par défaut)"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /produits [post]
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return success(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Mettre à jour un produit
// @Description  La quantité n'est pas modifiable ici; passer par POST /mouvements.
// @Tags         produits
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID du produit"
// @Param        body  body  dto.UpdateProduitRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /produits/{id} [put]
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	var in dto.UpdateProduitRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Supprimer un produit
// @Tags         produits
// @Produce      json
// @Param        id   path  int  true  "ID du produit"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /produits/{id} [delete]
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err, "Produit non trouvé")
	}
	return message(c, "Produit supprimé avec succès")
}
