package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
)

// ZoneHandler traite les requêtes HTTP du plan de zones d'un dépôt.
type ZoneHandler struct {
	uc *usecase.ZoneUseCase
}

// NewZoneHandler construit le handler.
func NewZoneHandler(uc *usecase.ZoneUseCase) *ZoneHandler {
	return &ZoneHandler{uc: uc}
}

// GetByDepot godoc
// @Summary      Obtenir le plan de zones d'un dépôt
// @Tags         zones
// @Produce      json
// @Param        id   path  int  true  "ID du dépôt"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /depots/{id}/zones [get]
func (h *ZoneHandler) GetByDepot(c *fiber.Ctx) error {
	depotID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	out, err := h.uc.GetByDepot(c.Context(), int64(depotID))
	if err != nil {
		return respondError(c, err, "Aucune zone trouvée pour ce dépôt")
	}
	return success(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Créer le plan de zones d'un dépôt
// @Description  Un seul document par dépôt; utiliser PUT pour remplacer.
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID du dépôt"
// @Param        body  body  dto.ZonesRequest  true  "zones"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /depots/{id}/zones [post]
func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	depotID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	var in dto.ZonesRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Create(c.Context(), int64(depotID), in)
	if err != nil {
		return respondError(c, err, "Aucune zone trouvée pour ce dépôt")
	}
	return success(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Remplacer le plan de zones d'un dépôt (création si absent)
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID du dépôt"
// @Param        body  body  dto.ZonesRequest  true  "zones"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /depots/{id}/zones [put]
func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	depotID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	var in dto.ZonesRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	out, err := h.uc.Update(c.Context(), int64(depotID), in)
	if err != nil {
		return respondError(c, err, "Aucune zone trouvée pour ce dépôt")
	}
	return success(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Supprimer le plan de zones d'un dépôt
// @Tags         zones
// @Produce      json
// @Param        id   path  int  true  "ID du dépôt"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /depots/{id}/zones [delete]
func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	depotID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "L'identifiant doit être un entier")
	}
	if err := h.uc.Delete(c.Context(), int64(depotID)); err != nil {
		return respondError(c, err, "Aucune zone trouvée pour ce dépôt")
	}
	return message(c, "Zones supprimées avec succès")
}
