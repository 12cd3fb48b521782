package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/pkg/logger"
	"github.com/meditrack/meditrack-core/pkg/metrics"
)

// RequestLogger journalise chaque requête (méthode, chemin, statut, durée,
// identifiant de requête) et alimente les métriques HTTP si m n'est pas nil.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			// L'ErrorHandler de Fiber n'a pas encore écrit le statut
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// Route template (/depots/:id) plutôt que chemin brut, pour borner la
		// cardinalité des labels
		path := c.Route().Path
		if m != nil {
			m.RequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(c.Method(), path).Observe(elapsed.Seconds())
		}

		rid, _ := c.Locals("requestid").(string)
		log.Info().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("requête traitée")
		return err
	}
}
