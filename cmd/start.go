package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"domain-checker/core/loader"
	"domain-checker/core/logger"
	"domain-checker/core/metrics"
	"domain-checker/core/middleware/auth"
	"domain-checker/core/middleware/rayid"
	"domain-checker/feature/domains"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "domain-checker/docs/swagger"
)

// @title Domain Checker API
// @version 1.0
// @description Reconciles tables of domain availability against live lookups.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the domain checker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.Close()

		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if err := rt.cfg.Server.Validate(); err != nil {
			return err
		}
		if rt.cfg.Server.ApiKey == "" {
			logg.Warn("SERVER_API_KEY is empty, the API is not protected")
		}

		if rt.objects != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := rt.objects.Ready(ctx, rt.cfg.Storage.Bucket); err != nil {
				logg.Warn("Default bucket not ready, s3:// tables may fail", zap.Error(err))
			} else {
				logg.Info("Object storage ready", zap.String("bucket", rt.cfg.Storage.Bucket))
			}
			cancel()
		}

		app := newApp(rt)

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp builds the fiber application with middleware and features.
func newApp(rt *runtime) *fiber.App {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             rt.cfg.Server.BodyLimit(),
	})

	// RayID must be first to trace everything
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

	// Public routes
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "history": rt.db != nil})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(rt.registry)))

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	mgr := loader.NewManager()
	mgr.Register(domains.NewFeature(rt.service))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
