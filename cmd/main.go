package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"rune-backend/config"
	_ "rune-backend/docs" // generated by swag init
	"rune-backend/internal/controller"
	"rune-backend/internal/logging"
	"rune-backend/internal/metrics"
	"rune-backend/internal/middleware"
	"rune-backend/internal/parser"
	"rune-backend/internal/service"
	"rune-backend/internal/source"
)

// @title           Rune Log Events API
// @version         1.0
// @description     Classifies log file lines by severity keyword for the Rune log viewer.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         events
// @tag.description  Log file classification

// @tag.name         health
// @tag.description  API health check operations

func main() {
	app := fx.New(appOptions())

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
	log.Info().Msg("Exiting.")
}

func appOptions() fx.Option {
	return fx.Options(
		// Core Dependencies
		fx.Provide(
			NewConfig,
		),
		// Classification pipeline
		fx.Provide(
			NewResolver,
			parser.NewDefaultClassifier,
			metrics.NewLevelSummarizer,
			service.NewEventService,
			controller.NewEventController,
			NewGinEngine,
		),
		fx.Invoke(
			InitLogging,
			RegisterAPIRoutes,
		),
	)
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

func NewResolver(cfg *config.Config) source.Resolver {
	resolver := source.NewOSResolver(cfg.LogFiles.FallbackPaths)
	log.Info().Strs("fallbacks", resolver.FallbackPaths()).Msg("Log source resolver initialized")
	return resolver
}

func InitLogging(cfg *config.Config) {
	logging.Init(nil, logging.ParseLevel(cfg.Logging.Level))
	log.Info().Str("level", cfg.Logging.Level).Msg("Logging initialized")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS for the UI webview
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
		CustomSchemas: []string{"tauri://"},
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	eventController *controller.EventController,
) {
	controller.RegisterEventRoutes(router, eventController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
