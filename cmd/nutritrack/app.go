package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/nutritrack/cli/internal/config"
	"github.com/nutritrack/cli/internal/services/lifecycle"
	"github.com/nutritrack/cli/pkg/logger"
	"github.com/nutritrack/cli/pkg/reqctx"
	"github.com/nutritrack/cli/repository"
	"github.com/nutritrack/cli/repository/boltstore"
	"github.com/nutritrack/cli/repository/memstore"
	"github.com/nutritrack/cli/repository/rest"
	adminUC "github.com/nutritrack/cli/usecase/admin"
	authUC "github.com/nutritrack/cli/usecase/auth"
	"github.com/nutritrack/cli/usecase/dashboard"
	"github.com/nutritrack/cli/usecase/guard"
)

// app wires the client together for a single command invocation.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	manager *lifecycle.Manager
	adapter *reqctx.Adapter
	out     io.Writer

	creds     repository.CredentialStore
	guard     *guard.Guard
	auth      *authUC.UseCase
	dashboard *dashboard.UseCase
	admin     *adminUC.UseCase

	cancel context.CancelFunc
	ctx    context.Context
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}

	manager := lifecycle.New(0, zapLogger)

	var creds repository.CredentialStore
	if cfg.Store.Persist {
		store, err := boltstore.Open(cfg.Store.Path, cfg.Store.Bucket)
		if err != nil {
			return nil, fmt.Errorf("open credential store: %w", err)
		}
		manager.Register("credential_store", func(ctx context.Context) error {
			return store.Close()
		})
		creds = store
	} else {
		creds = memstore.New()
	}

	manager.Register("logger", func(ctx context.Context) error {
		_ = zapLogger.Sync()
		return nil
	})

	client := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	}, creds, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	manager.Listen(cancel)

	return &app{
		cfg:       cfg,
		logger:    zapLogger,
		manager:   manager,
		adapter:   reqctx.NewAdapter(cfg.API.RequestTimeout),
		out:       os.Stdout,
		creds:     creds,
		guard:     guard.New(creds, zapLogger),
		auth:      authUC.New(client, creds, zapLogger),
		dashboard: dashboard.New(client, zapLogger),
		admin:     adminUC.New(client, zapLogger),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

func (a *app) close() {
	a.cancel()
	if err := a.manager.Shutdown(context.Background()); err != nil {
		a.logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

// callContext derives the context used for one backend call.
func (a *app) callContext() (context.Context, context.CancelFunc) {
	return a.adapter.New(a.ctx)
}

// enter resolves the session guard for the command's logical screen. A
// redirect decision aborts the command with guidance on where to go.
func (a *app) enter(screen guard.Screen) error {
	decision := a.guard.Resolve(screen)
	if decision.Allow {
		return nil
	}
	return fmt.Errorf("%s", redirectHint(decision.RedirectTo))
}

func redirectHint(to guard.Screen) string {
	switch to {
	case guard.ScreenLogin:
		return "you are not authorized for this screen; run 'nutritrack login' first"
	case guard.ScreenHome:
		return "you are already logged in; run 'nutritrack dashboard' (or 'nutritrack logout' to switch accounts)"
	default:
		return fmt.Sprintf("redirected to %s", to)
	}
}
