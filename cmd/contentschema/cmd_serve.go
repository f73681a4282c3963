package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wcc-platform/contentschema/cms"
	"github.com/wcc-platform/contentschema/cms/httpapi"
	"github.com/wcc-platform/contentschema/i18n"
	"github.com/wcc-platform/contentschema/internal/config"
)

func newServeCmd() *cobra.Command {
	var (
		addr   string
		noSeed bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve CMS page content over HTTP",
		Long: `Serves the CMS API. Configuration comes from CONTENTSCHEMA_* environment
variables; flags override them.

Storage:
  - CONTENTSCHEMA_DATABASE_URL set: PostgreSQL
  - otherwise: in-memory, seeded with the bundled content
  - CONTENTSCHEMA_REDIS_URL set: Redis page cache in front of storage`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, !noSeed)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CONTENTSCHEMA_ADDR)")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "do not store the bundled content when a page is empty")
	return cmd
}

// components holds everything runServe opens so it can be closed in one place.
type components struct {
	db    *sql.DB
	redis *redis.Client
}

func (c *components) Close() {
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.db != nil {
		_ = c.db.Close()
	}
}

func buildService(ctx context.Context, cfg config.Config, reg prometheus.Registerer, seed bool) (*cms.Service, *components, error) {
	comp := &components{}
	var repo cms.Repository = cms.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		db, err := cms.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, comp, err
		}
		comp.db = db
		pg := cms.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			return nil, comp, err
		}
		repo = pg
		logger.Info("using postgres page store")
	}
	if seed {
		wrote, err := cms.Seed(ctx, repo)
		if err != nil {
			return nil, comp, err
		}
		if wrote {
			logger.Info("stored bundled page content")
		}
	}

	opts := []cms.Option{cms.WithLogger(logger), cms.WithMetrics(cms.NewMetrics(reg))}
	if cfg.RedisURL != "" {
		client, err := cms.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, comp, err
		}
		comp.redis = client
		opts = append(opts, cms.WithCache(cms.NewRedisCache(client), cfg.CacheTTL))
		logger.Info("using redis page cache", zap.Duration("ttl", cfg.CacheTTL))
	}
	svc := cms.NewService(repo, opts...)
	if p, err := svc.GetCodeOfConduct(ctx); err != nil {
		logger.Warn("code of conduct page unavailable", zap.Error(err))
	} else {
		logger.Info("code of conduct page ready", zap.String("id", p.ID), zap.Int("items", len(p.Items)))
	}
	return svc, comp, nil
}

func runServe(ctx context.Context, cfg config.Config, seed bool) error {
	i18n.SetLanguage(cfg.Lang)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, comp, err := buildService(ctx, cfg, reg, seed)
	defer comp.Close()
	if err != nil {
		return err
	}

	h := httpapi.New(svc, logger, httpapi.NewMetrics(reg))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(h, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
