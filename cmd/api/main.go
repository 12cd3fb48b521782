package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meditrack/meditrack-core/internal/application/mouvement"
	"github.com/meditrack/meditrack-core/internal/application/usecase"
	"github.com/meditrack/meditrack-core/internal/infrastructure/mongodb"
	"github.com/meditrack/meditrack-core/internal/infrastructure/postgres"
	httpRouter "github.com/meditrack/meditrack-core/internal/interfaces/http"
	"github.com/meditrack/meditrack-core/pkg/config"
	"github.com/meditrack/meditrack-core/pkg/logger"
	"github.com/meditrack/meditrack-core/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()

	// Store relationnel (dépôts, produits, mouvements) : pool construit ici,
	// injecté partout, fermé à l'arrêt : pas d'état global.
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connecté")

	// Store documentaire (plans de zones), indépendant du relationnel,
	// jamais couplé transactionnellement.
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à MongoDB")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()
	zonesColl, err := mongodb.ZonesCollection(ctx, mongoClient, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("initialisation de la collection zones")
	}
	log.Info().Msg("MongoDB connecté")

	m := metrics.New(prometheus.DefaultRegisterer)

	depotRepo := postgres.NewDepotRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	mouvementRepo := postgres.NewMouvementRepository(pool)
	zoneRepo := mongodb.NewZoneRepository(zonesColl)
	txRunner := postgres.NewTxRunner(pool)

	depotUC := usecase.NewDepotUseCase(depotRepo, zoneRepo, log)
	produitUC := usecase.NewProduitUseCase(produitRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo)
	mouvementUC := mouvement.NewRegisterMouvementUseCase(txRunner, mouvementRepo, m, cfg.Mouvement.TxTimeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(httpRouter.RequestLogger(log, m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MediTrack Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DepotUC:     depotUC,
		ProduitUC:   produitUC,
		ZoneUC:      zoneUC,
		MouvementUC: mouvementUC,
	})

	// Arrêt propre sur SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("arrêt du serveur")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("serveur démarré")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("serveur HTTP")
	}
}
