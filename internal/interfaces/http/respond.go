package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/domain"
)

// success répond {status: "success", data: ...} avec le code donné.
func success(c *fiber.Ctx, code int, data any) error {
	return c.Status(code).JSON(dto.Success(data))
}

// message répond {status: "success", message: ...} (suppressions).
func message(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{Status: "success", Message: msg})
}

// fail répond {status: "error", message: ...} avec le code donné.
func fail(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(dto.Error(msg))
}

// respondError traduit une erreur de domaine en réponse HTTP. notFoundMsg est
// le message 404 propre à la ressource du handler. Toute erreur inattendue est
// journalisée et renvoyée en 500 avec un message générique : aucun détail
// interne ne sort vers le client.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var validation *domain.ValidationError
	var insuff *domain.InsufficientStockError
	var duplicate *domain.DuplicateError
	var reference *domain.ReferenceError
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &validation):
		return fail(c, fiber.StatusBadRequest, validation.Message)
	case errors.As(err, &insuff):
		return fail(c, fiber.StatusBadRequest, insuff.Error())
	case errors.As(err, &duplicate):
		return fail(c, fiber.StatusBadRequest, duplicate.Message)
	case errors.As(err, &reference):
		return fail(c, fiber.StatusBadRequest, reference.Message)
	case errors.As(err, &conflict):
		return fail(c, fiber.StatusBadRequest, conflict.Message)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrTransient):
		return fail(c, fiber.StatusInternalServerError, "Opération interrompue, veuillez réessayer")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erreur interne")
		return fail(c, fiber.StatusInternalServerError, "Erreur interne du serveur")
	}
}
