package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oss-bridge/core/config"
	"oss-bridge/core/database"
	"oss-bridge/core/loader"
	"oss-bridge/core/logger"
	"oss-bridge/core/middleware/auth"
	"oss-bridge/core/middleware/rayid"
	"oss-bridge/core/storage"
	"oss-bridge/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "oss-bridge/docs/swagger"
)

// @title OSS Bridge API
// @version 1.0
// @description API over a single object storage bucket.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		adapter, err := storage.New(cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Invalid storage configuration", zap.Error(err))
		}
		checkBucket(cmd.Context(), adapter, logg)

		db := connectAudit(cfg.Database, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(objects.NewFeature(adapter, logg, db))

		// RayID must be first to trace everything.
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

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		if cfg.Server.MetricsEnabled() {
			app.Get(cfg.Server.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
		}

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("bucket", adapter.Bucket()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// checkBucket warns when the configured bucket is unreachable. The server still starts.
func checkBucket(ctx context.Context, adapter *storage.Adapter, logg *zap.Logger) {
	client, err := adapter.Client()
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, adapter.Bucket())
	switch {
	case err != nil:
		logg.Warn("Bucket check failed", zap.String("bucket", adapter.Bucket()), zap.Error(err))
	case !exists:
		logg.Warn("Bucket does not exist", zap.String("bucket", adapter.Bucket()))
	}
}

// connectAudit opens the audit database, returning nil when it is disabled or unreachable.
func connectAudit(cfg database.Config, logg *zap.Logger) *gorm.DB {
	db, err := database.Connect(cfg)
	switch {
	case errors.Is(err, database.ErrDisabled):
		logg.Debug("Audit database disabled")
		return nil
	case err != nil:
		logg.Warn("Audit database unavailable", zap.Error(err))
		return nil
	}
	logg.Info("Connected to audit database")
	return db
}
