package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/kdduha/slangbot/docs"
	"github.com/kdduha/slangbot/internal/config"
	"github.com/kdduha/slangbot/internal/handler"
	"github.com/kdduha/slangbot/internal/history"
	"github.com/kdduha/slangbot/internal/metrics"
	"github.com/kdduha/slangbot/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE:  runServe,
}

// @title Slangbot API
// @version 1.0
// @description Explain slang and invent new slang with a generative language model.
// @BasePath /
func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.session(ctx)
	if err != nil {
		return err
	}
	metrics.HistoryEntries(len(a.history.List(ctx, "")))

	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: newRouter(a.cfg.Server, s, a.history, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("port", a.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newRouter(cfg config.ServerConfig, s *session.Controller, log *history.Log, logger *zap.Logger) http.Handler {
	e := handler.NewExplainHandler(s)
	sh := handler.NewSessionHandler(s)
	h := handler.NewHistoryHandler(log, s)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		handler.RequestLogger(logger),
		middleware.Recoverer,
		middleware.Throttle(cfg.ThrottleLimit),
		middleware.Timeout(cfg.Timeout),
		metrics.Middleware,
	}...)

	r.Post("/explain", e.Explain)
	r.Post("/generate", e.Generate)

	r.Get("/session", sh.Get)
	r.Put("/session/mode", sh.SetMode)
	r.Post("/share", sh.Share)
	r.Post("/share/consume", sh.ConsumeShare)

	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.List)
		r.Delete("/", h.Clear)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/load", h.Load)
	})
	r.Get("/preferences/sound", h.GetSound)
	r.Put("/preferences/sound", h.SetSound)

	r.Post("/prompt/explain", handler.PromptExplain)
	r.Post("/prompt/generate", handler.PromptGenerate)

	r.Get("/healthz", handler.Healthz)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	return r
}
