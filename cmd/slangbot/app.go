package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kdduha/slangbot/internal/cache"
	"github.com/kdduha/slangbot/internal/config"
	"github.com/kdduha/slangbot/internal/gateway"
	"github.com/kdduha/slangbot/internal/history"
	"github.com/kdduha/slangbot/internal/kv"
	"github.com/kdduha/slangbot/internal/session"
)

// app holds what every command shares: configuration, the persisted store
// and the history log kept in it.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   kv.Store
	history *history.Log
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	applyLogLevel(cfg)
	store, err := kv.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	logger.Debug("store opened", storeFields(cfg.Store.Backend, store)...)
	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		history: history.New(store, logger),
	}, nil
}

func storeFields(backend string, store kv.Store) []zap.Field {
	fields := []zap.Field{zap.String("backend", backend)}
	if s, ok := store.(*kv.SQLiteStore); ok {
		fields = append(fields, zap.String("path", s.Path()))
	}
	return fields
}

// applyLogLevel moves the shared logger to the configured level unless
// --verbose already asked for debug output.
func applyLogLevel(cfg *config.Config) {
	if !verbose {
		logLevel.SetLevel(cfg.LogLevel)
	}
}

// session builds a controller backed by the configured gateway. Commands
// that never call the model do not need credentials.
func (a *app) session(ctx context.Context) (*session.Controller, error) {
	gw, err := gateway.New(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Info("using language model", zap.String("provider", gw.Name()))

	opts := []session.Option{session.WithPublicURL(a.cfg.Server.PublicBaseURL)}
	if a.cfg.Cache.Enable {
		opts = append(opts, session.WithCache(cache.New(a.store, a.cfg.Cache.TTL)))
		a.logger.Info("explanation cache enabled", zap.Duration("ttl", a.cfg.Cache.TTL))
	}
	return session.New(gw, a.history, a.logger, opts...), nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
}
