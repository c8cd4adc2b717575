package cmd

import (
	"log"

	"storage-provider/core/config"
	"storage-provider/core/loader"
	"storage-provider/core/logger"
	"storage-provider/core/middleware/auth"
	"storage-provider/core/middleware/rayid"
	"storage-provider/core/storage"
	"storage-provider/feature/health"
	"storage-provider/feature/provider"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "storage-provider/docs/swagger"
)

// @title Storage Provider API
// @version 1.0
// @description Object operations on one S3 bucket.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage provider server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		logg = logg.With(zap.String("driver", cfg.Storage.Driver))

		// Immutable: query values outlive the request (the memory driver keeps keys).
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			Immutable:             true,
		})

		// 4. Register Features
		prov := provider.NewFeature(store, provider.ScopeFromConfig(cfg.Storage), logg,
			provider.WithPageSize(cfg.Storage.PageSize()))

		mgr := loader.NewManager(logg)
		mgr.Register(prov)
		mgr.Register(health.NewFeature(prov.Service(), logg))

		// RayID first so every later log line is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if cfg.Server.ApiKey == "" {
			logg.Warn("API key is empty, authentication is disabled")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("region", cfg.Storage.Region))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown (Execute wires SIGINT/SIGTERM into the context)
		<-cmd.Context().Done()
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
