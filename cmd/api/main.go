package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/softcon-wm/internal/application/auth"
	"github.com/jhoicas/softcon-wm/internal/application/ports"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/apiclient"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/softcon-wm/internal/infrastructure/pdf"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/postgres"
	"github.com/jhoicas/softcon-wm/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/softcon-wm/internal/interfaces/http"
	"github.com/jhoicas/softcon-wm/pkg/config"
	"github.com/jhoicas/softcon-wm/pkg/logger"
	"github.com/jhoicas/softcon-wm/pkg/metrics"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api_url", cfg.API.BaseURL).
		Msg("iniciando portal")

	// Sin el par de Supabase el portal no arranca.
	sb, err := supabase.New(cfg.Supabase, log.Component("supabase"))
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de Supabase")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	api, err := apiclient.New(cfg.API.BaseURL, nil,
		apiclient.WithLogger(log.Component("apiclient")),
		apiclient.WithObserver(m),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("API_URL inválido")
	}
	backendLog := log.Component("backend")

	ctx := context.Background()
	var directorio ports.Directorio = sb
	pool, err := postgres.NewPool(ctx, cfg.DB)
	switch {
	case err == nil:
		defer pool.Close()
		directorio = postgres.NewDirectorioRepository(pool, cfg.DB.DatabaseURL, log.Component("postgres"))
	case errors.Is(err, postgres.ErrSinDatabaseURL):
		log.Info().Msg("DATABASE_URL vacío: directorio vía REST de Supabase")
	default:
		log.Warn().Err(err).Msg("Postgres no disponible: directorio vía REST de Supabase")
	}

	authUC := auth.NewAuthUseCase(backend.New(api, backendLog, backend.WithFallbackObserver(m)), sb)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 << 20, // fotos de obra
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "SOFTCON-MYS Portal",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Backend:    httpRouter.NewBackendFactory(api, backendLog, backend.WithFallbackObserver(m)),
		Directorio: directorio,
		PDF:        infrapdf.NewMarotoReportes(""),
		Session:    cfg.Session,
		Metrics:    m,
		Gatherer:   reg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("portal detenido")
}
