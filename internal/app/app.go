package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "github.com/SergeyBogomolovv/food-order-service/docs"
	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/SergeyBogomolovv/food-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(middleware.WithLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteNotFound(w)
	})
	router.MethodNotAllowed(utils.HandlerFunc(utils.WriteMethodNotAllowed))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger.With(slog.String("component", "app")),
		httpSrv: httpSrv,
		router:  router,
	}
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

// Starter is started before traffic is accepted. Starters that also
// implement io.Closer are closed on Stop.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// Start runs every starter and only then begins consuming and serving.
// Server errors arrive on the returned channel.
func (a *application) Start(ctx context.Context) (<-chan error, error) {
	// Стартеры живут до отмены ctx, поэтому получают его, а не контекст группы
	var g errgroup.Group
	for _, s := range a.starters {
		g.Go(func() error {
			return s.Start(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.logger.Info("application started")
	return errCh, nil
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
		a.logger.Error("failed to shutdown http server", slog.Any("error", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
			a.logger.Error("failed to close consumer", slog.Any("error", err))
		}
	}

	for _, s := range a.starters {
		closer, ok := s.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
			a.logger.Error("failed to close component", slog.Any("error", err))
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
