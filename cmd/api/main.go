package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/netline-api/internal/application/analytics"
	"github.com/jhoicas/netline-api/internal/application/auth"
	"github.com/jhoicas/netline-api/internal/application/items"
	"github.com/jhoicas/netline-api/internal/application/live"
	"github.com/jhoicas/netline-api/internal/application/reports"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/internal/infrastructure/export"
	"github.com/jhoicas/netline-api/internal/infrastructure/gcppubsub"
	infrapdf "github.com/jhoicas/netline-api/internal/infrastructure/pdf"
	"github.com/jhoicas/netline-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/netline-api/internal/interfaces/http"
	"github.com/jhoicas/netline-api/pkg/config"
	"github.com/jhoicas/netline-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Bool("live", cfg.Live.Enabled()).
		Msg("iniciando aplicación")

	loc := sales.TargetLocation
	if cfg.Report.Timezone != "" {
		if loc, err = time.LoadLocation(cfg.Report.Timezone); err != nil {
			log.Fatal().Err(err).Msg("REPORT_TIMEZONE")
		}
	}
	policy, err := sales.ParseCommissionPolicy(cfg.Report.CommissionRates)
	if err != nil {
		log.Fatal().Err(err).Msg("COMMISSION_RATES")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	src, closeStore, err := store.Open(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al store")
	}
	defer closeStore()

	userRepo := store.NewUserStore(src)
	saleRepo := store.NewSaleStore(src)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, loc)
	itemsUC := items.NewUseCase(src, cfg.Store.AllowedTables)
	dashboardUC := analytics.NewDashboardUseCase(saleRepo, userRepo, loc)
	analyticsUC := analytics.NewAnalyticsUseCase(saleRepo, userRepo, loc)
	commissionUC := reports.NewCommissionUseCase(saleRepo, userRepo, policy, loc,
		export.NewCSVExporter(),
		export.NewXLSXExporter(),
		infrapdf.NewCommissionPDFExporter(cfg.App.Name),
	)

	// Feed en vivo: solo si hay proyecto de Pub/Sub configurado.
	var snapshots *live.SnapshotStore
	pollerDone := make(chan struct{})
	if cfg.Live.Enabled() {
		ps, err := gcppubsub.New(ctx, cfg.Live)
		if err != nil {
			log.Fatal().Err(err).Msg("pubsub")
		}
		defer ps.Close()

		snapshots = live.NewSnapshotStore()
		source := store.NewSnapshotStore(src, cfg.Live.SnapshotCollection, cfg.Live.SnapshotName)
		poller := live.NewPoller(ps, ps, source, snapshots, cfg.Live.PollInterval, log)
		go func() {
			defer close(pollerDone)
			poller.Supervise(ctx)
		}()
	} else {
		close(pollerDone)
		log.Warn().Msg("LIVE_PROJECT_ID vacío: feed de clientes conectados deshabilitado")
	}
	liveSvc := live.NewService(snapshots, loc)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
		Logger:      log,
	})

	var docs string
	if _, err := os.Stat(swaggerFile); err == nil {
		docs = swaggerFile
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:  cfg.App.Name,
		JWTSecret:    cfg.JWT.Secret,
		SwaggerFile:  docs,
		Auth:         httpRouter.NewAuthHandler(authUC),
		Items:        httpRouter.NewItemsHandler(itemsUC),
		Dashboard:    httpRouter.NewDashboardHandler(dashboardUC),
		Analytics:    httpRouter.NewAnalyticsHandler(analyticsUC),
		Reports:      httpRouter.NewReportsHandler(commissionUC),
		Live:         httpRouter.NewLiveHandler(ctx, liveSvc, log),
		LoginLimiter: httpRouter.NewRateLimiter(cfg.Security.LoginRateLimitRPS, cfg.Security.LoginRateLimitBurst),
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

	// Cancela el poller y los streams SSE antes de esperar a las conexiones abiertas.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	select {
	case <-pollerDone:
	case <-shutdownCtx.Done():
	}

	log.Info().Msg("aplicación detenida")
}
