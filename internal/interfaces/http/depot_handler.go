package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
)

// DepotHandler traite les requêtes HTTP des dépôts.
type DepotHandler struct {
	uc *usecase.DepotUseCase
}

// NewDepotHandler construit le handler.
func NewDepotHandler(uc *usecase.DepotUseCase) *DepotHandler {
	return &DepotHandler{uc: uc}
}

// List godoc
// @Summary      Lister les dépôts
// @Tags         depots
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /depots [get]
func (h *DepotHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "Dépôt non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtenir un dépôt
// @Tags         depots
// @Produce      json
// @Param        id   path  int  true  "ID du dépôt"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /depots/{id} [get]
func (h *DepotHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "Dépôt non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Créer un dépôt
// @Tags         depots
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepotRequest  true  "nom, adresse"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /depots [post]
func (h *DepotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "Dépôt non trouvé")
	}
	return success(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Mettre à jour un dépôt
// @Tags         depots
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID du dépôt"
// @Param        body  body  dto.UpdateDepotRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /depots/{id} [put]
func (h *DepotHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	var in dto.UpdateDepotRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err, "Dépôt non trouvé")
	}
	return success(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Supprimer un dépôt
// @Description  Refusé tant que des produits référencent le dépôt.
// @Tags         depots
// @Produce      json
// @Param        id   path  int  true  "ID du dépôt"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /depots/{id} [delete]
func (h *DepotHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	if err := h.uc.Delete(c.Context(), int64(id)); err != nil {
		return respondError(c, err, "Dépôt non trouvé")
	}
	return message(c, "Dépôt supprimé avec succès")
}
