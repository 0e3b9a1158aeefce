package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tanahmerapi/backend/app/controllers"
	"github.com/tanahmerapi/backend/app/repository"
	"github.com/tanahmerapi/backend/internal/pkg/cache"
	"github.com/tanahmerapi/backend/internal/pkg/database"
	"github.com/tanahmerapi/backend/internal/pkg/env"
	"github.com/tanahmerapi/backend/internal/pkg/pricing"
	"github.com/tanahmerapi/backend/internal/pkg/promotion"
	"github.com/tanahmerapi/backend/internal/pkg/router"
	"github.com/tanahmerapi/backend/internal/pkg/scheduler"
	"github.com/tanahmerapi/backend/internal/pkg/storage"
)

func main() {
	app, sweeper := NewApplication()

	sweeper.Start()
	defer sweeper.Stop()

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		fiberlog.Info("[App] Shutting down")
		sweeper.Stop()
		_ = app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	if err != nil {
		log.Fatal(err)
	}
}

func NewApplication() (*fiber.App, *scheduler.Manager) {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	// object storage for uploaded images
	storageCfg, err := storage.LoadConfig()
	if err != nil {
		log.Fatalf("storage configuration invalid: %v", err)
	}
	storageClient, err := storage.NewClient(storageCfg)
	if err != nil {
		log.Fatalf("storage client setup failed: %v", err)
	}
	controllers.SetStorageClient(storageClient)

	// promotion expiry sweeper
	factory := repository.GetGlobalFactory()
	engine := pricing.NewEngine(repository.NewPricingTxProvider(database.GetDB()))
	promotionService := promotion.NewService(
		factory.GetPackageRepository(),
		factory.GetPromotionRepository(),
		factory.GetPromotionPackageRepository(),
		engine,
	)
	sweeper := scheduler.NewManager(promotionService, scheduler.Config{
		Interval:     time.Duration(env.GetEnvInt("PROMOTION_SWEEP_INTERVAL_MINUTES", 60)) * time.Minute,
		RunOnStartup: env.GetEnvBool("PROMOTION_SWEEP_ON_START", true),
	})

	app := fiber.New(fiber.Config{
		AppName:   "Tanah Merapi API",
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(recover.New(), logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: env.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
	}))

	router.InstallRouter(app)

	return app, sweeper
}
