// Command authzd runs the relationship-based authorization service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/authzkit/auth"
	"github.com/kbukum/authzkit/banking"
	"github.com/kbukum/authzkit/config"
	"github.com/kbukum/authzkit/genai"
	"github.com/kbukum/authzkit/httpapi"
	"github.com/kbukum/authzkit/loader"
	"github.com/kbukum/authzkit/logger"
	"github.com/kbukum/authzkit/observability"
	"github.com/kbukum/authzkit/rebac"
	"github.com/kbukum/authzkit/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "authzd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	log.Info("starting", map[string]interface{}{
		"version":     version.Short(),
		"environment": cfg.Environment,
		"domain":      cfg.Graph.Domain,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Observability.Version = version.Get().Version
	providers, err := observability.Init(ctx, cfg.Observability, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			log.Warn("observability shutdown", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	store := rebac.NewStore()
	var rules *rebac.RuleSet
	switch cfg.Graph.Domain {
	case config.DomainBanking:
		rules = banking.Rules()
		if cfg.Graph.Seed {
			banking.Seed(store)
		}
	case config.DomainGenAI:
		rules = genai.Rules()
		if cfg.Graph.Seed {
			genai.Seed(store)
		}
	default:
		return fmt.Errorf("unknown domain %q", cfg.Graph.Domain)
	}

	if cfg.Graph.File != "" {
		n, err := loader.LoadFile(store, cfg.Graph.File)
		if err != nil {
			return err
		}
		log.Info("graph loaded", map[string]interface{}{
			"file":     cfg.Graph.File,
			"entities": n,
		})
	}

	checker := rebac.NewChecker(store, rules,
		rebac.WithMaxDepth(cfg.Evaluator.MaxDepth),
		rebac.WithLogger(log),
	)
	instrumented, err := observability.NewInstrumentedChecker(checker)
	if err != nil {
		return err
	}

	var tokens *auth.TokenService
	if cfg.Auth.JWTSecret != "" {
		tokens, err = auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
		if err != nil {
			return err
		}
	} else {
		log.Warn("jwt secret not set, trusting X-User-Id header")
	}

	handlers := httpapi.NewHandlers(instrumented, store, log)
	server := httpapi.New(cfg.Server, handlers, tokens, cfg.Auth.AdminKeyHash, log)
	if err := server.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("shutting down")
	return server.Stop(context.Background())
}
