package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/mmrmagno/valart/internal/adapter/mailer/emailjs"
	"github.com/mmrmagno/valart/internal/adapter/postgres"
	artworkrepo "github.com/mmrmagno/valart/internal/adapter/postgres/artwork"
	"github.com/mmrmagno/valart/internal/config"
	"github.com/mmrmagno/valart/internal/service/gallery"
	"github.com/mmrmagno/valart/internal/service/submission"
	"github.com/mmrmagno/valart/internal/transport/middleware"
	"github.com/mmrmagno/valart/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and HTTP transport, and serves until
// ctx is cancelled. On cancellation the server drains in-flight requests
// within ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("mailer_enabled", cfg.Mailer.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	artworks := artworkrepo.New(pool)

	var submissionSvc *submission.Service
	if cfg.Mailer.Enabled {
		mail := emailjs.NewMailer(emailjs.Config{
			BaseURL:    cfg.Mailer.BaseURL,
			ServiceID:  cfg.Mailer.ServiceID,
			TemplateID: cfg.Mailer.TemplateID,
			PublicKey:  cfg.Mailer.PublicKey,
			Timeout:    cfg.Mailer.Timeout,
		}, logger)
		submissionSvc = submission.NewService(logger, artworks, mail, cfg.Mailer.AdminEmail, cfg.Mailer.NotifyTimeout)
	} else {
		submissionSvc = submission.NewService(logger, artworks, nil, cfg.Mailer.AdminEmail, cfg.Mailer.NotifyTimeout)
	}
	gallerySvc := gallery.NewService(logger, artworks, cfg.Gallery.PageSize)

	router := rest.NewRouter(rest.Handlers{
		Submit:  rest.NewSubmitHandler(submissionSvc, logger),
		Gallery: rest.NewGalleryHandler(gallerySvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
