package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meditrack/meditrack-core/internal/application/dto"
	"github.com/meditrack/meditrack-core/internal/application/mouvement"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	DepotUC     *usecase.DepotUseCase
	ProduitUC   *usecase.ProduitUseCase
	ZoneUC      *usecase.ZoneUseCase
	MouvementUC *mouvement.RegisterMouvementUseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	// Route d'accueil
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Bienvenue sur MediTrack Core API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"depots":     "/depots",
				"produits":   "/produits",
				"mouvements": "/mouvements",
				"zones":      "/depots/:id/zones",
			},
		})
	})

	depots := app.Group("/depots")
	depotHandler := NewDepotHandler(deps.DepotUC)
	depots.Get("/", depotHandler.List)
	depots.Post("/", depotHandler.Create)
	depots.Get("/:id", depotHandler.GetByID)
	depots.Put("/:id", depotHandler.Update)
	depots.Delete("/:id", depotHandler.Delete)

	// Plan de zones, rattaché aux dépôts
	zoneHandler := NewZoneHandler(deps.ZoneUC)
	depots.Get("/:id/zones", zoneHandler.GetByDepot)
	depots.Post("/:id/zones", zoneHandler.Create)
	depots.Put("/:id/zones", zoneHandler.Update)
	depots.Delete("/:id/zones", zoneHandler.Delete)

	produits := app.Group("/produits")
	produitHandler := NewProduitHandler(deps.ProduitUC)
	produits.Get("/", produitHandler.List)
	produits.Post("/", produitHandler.Create)
	produits.Get("/:id", produitHandler.GetByID)
	produits.Put("/:id", produitHandler.Update)
	produits.Delete("/:id", produitHandler.Delete)

	mouvements := app.Group("/mouvements")
	mouvementHandler := NewMouvementHandler(deps.MouvementUC)
	mouvements.Get("/", mouvementHandler.List)
	mouvements.Post("/", mouvementHandler.Create)
	mouvements.Get("/produit/:produit_id", mouvementHandler.ListByProduit)

	// Fallback 404 uniforme, après toutes les routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Route non trouvée"))
	})
}
