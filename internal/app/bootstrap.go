package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-match/internal/config"
	"staff-match/internal/delivery/http/handler"
	"staff-match/internal/delivery/http/middleware"
	"staff-match/internal/delivery/http/routes"
	"staff-match/internal/pkg/jwt"
	"staff-match/internal/scheduler"
	"staff-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Fiber     *fiber.App
	Container *Container
	Scheduler *scheduler.Scheduler
}

func New(c *Container) (*App, error) {
	if c == nil {
		return nil, errors.New("nil container")
	}

	sched, err := scheduler.New(c.Config.Sync.Schedule, c.Sync, c.Logger)
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})
	registerGlobalMiddleware(f, c.Logger)

	h := routes.Handlers{
		Health:    handler.NewHealthHandler(c.DB, cachePinger(c)),
		Config:    handler.NewConfigHandler(c.Config.Frontend),
		SyncGuard: syncGuard(c.Config.Auth, c.Config.App.AppName),
		WS:        ws.NewHandler(c.Hub, c.Logger),
	}
	if c.Matching != nil {
		h.Match = handler.NewMatchHandler(c.Matching)
	}
	if c.Sync != nil {
		h.Sync = handler.NewSyncHandler(c.Sync)
	}
	routes.NewRegistry(h).Register(f)

	return &App{Fiber: f, Container: c, Scheduler: sched}, nil
}

// cachePinger reports a bypassed cache as disabled rather than down.
func cachePinger(c *Container) handler.Pinger {
	if !c.Cache.Available() {
		return nil
	}
	return c.Cache
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewCORS())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

// syncGuard is nil when no JWT secret is configured.
func syncGuard(cfg config.AuthConfig, issuer string) fiber.Handler {
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil
	}
	svc := jwt.NewHMACService(cfg.JWTSecret, issuer)
	return middleware.NewAuthMiddleware(svc, cfg.Role).Middleware()
}

// Run serves HTTP, the websocket hub and the sync schedule until ctx is done.
func (a *App) Run(ctx context.Context) error {
	addr, err := ListenAddr(a.Container.Config.App.HTTPPort)
	if err != nil {
		return err
	}
	log := a.Container.Logger

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Container.Hub.Run(gctx)
		return nil
	})

	if err := a.Scheduler.Start(gctx); err != nil {
		return err
	}

	g.Go(func() error {
		log.Info("http listening", zap.String("addr", addr))
		return a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Scheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
