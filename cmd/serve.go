package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cdn-manager/core/api"
	"cdn-manager/core/loader"
	"cdn-manager/core/logger"
	"cdn-manager/core/middleware/auth"
	"cdn-manager/core/middleware/rayid"
	"cdn-manager/feature/integrity"
	"cdn-manager/feature/inventory"
	"cdn-manager/feature/origin"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "cdn-manager/docs/swagger"
)

// @title CDN Manager API
// @version 1.0
// @description Reconciles StrikeTracker CDN origins and reads account inventory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the HTTP server exposing origin reconciliation, inventory reads, run history and backend checks.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		client, err := rt.apiClient()
		if err != nil {
			return err
		}
		// Fail fast on bad credentials instead of on the first request.
		if err := client.Authenticate(ctx); err != nil {
			return err
		}

		originSvc, err := rt.originService(ctx, client)
		if err != nil {
			return err
		}

		integritySvc := rt.integrityService(ctx, client)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ReadTimeout:           rt.cfg.Server.ReadTimeout(),
			WriteTimeout:          rt.cfg.Server.WriteTimeout(),
		})

		mgr := loader.NewManager()
		mgr.Register(origin.NewFeature(originSvc))
		mgr.Register(inventory.NewFeature(inventory.NewService(client, api.InventoryKinds(), logg)))
		mgr.Register(integrity.NewFeature(integritySvc))

		// RayID first so every later log line can carry it.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: rt.cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			errCh <- app.Listen(rt.cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sig:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
