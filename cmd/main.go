package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/food-order-service/internal/app"
	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/SergeyBogomolovv/food-order-service/internal/handler"
	"github.com/SergeyBogomolovv/food-order-service/internal/jobs"
	"github.com/SergeyBogomolovv/food-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/food-order-service/internal/repo"
	"github.com/SergeyBogomolovv/food-order-service/internal/service"
	"github.com/SergeyBogomolovv/food-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/food-order-service/pkg/trm"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// @title           Food Order Service API
// @version         1.0
// @description     Документация HTTP API
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env, conf.LogFile)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	finalised := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithName("finalised_orders"))
	registry := jobs.NewRegistry(logger)

	var expiry service.ExpiryScheduler
	var publisher io.Closer
	switch conf.Scheduler.Backend {
	case config.SchedulerKafka:
		p := handler.NewKafkaExpiryPublisher(conf.Kafka)
		expiry, publisher = p, p
	default:
		expiry = jobs.NewLocalExpiryScheduler(registry, jobs.RejectStaleOrdersTask)
	}

	orderService := service.NewOrderService(logger, txManager, orderRepo, finalised, expiry, service.Options{
		AutoRejectAfter: conf.Orders.AutoRejectAfter(),
	})

	panicIfErr("failed to register task", registry.Register(jobs.Task{
		Name:     jobs.RejectStaleOrdersTask,
		Interval: conf.Scheduler.SweepInterval,
		Enabled:  true,
		Run:      orderService.HandleStaleOrders,
	}))

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, conf.Orders)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(finalised, registry, startupSweep{registry: registry})

	if conf.Scheduler.Backend == config.SchedulerKafka {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	serverErr, err := app.Start(ctx)
	panicIfErr("failed to start app", err)

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server failed", slog.Any("error", err))
		}
	}

	panicIfErr("failed to stop app", app.Stop())
	if publisher != nil {
		panicIfErr("failed to close expiry publisher", publisher.Close())
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env, file string) *slog.Logger {
	var w io.Writer = os.Stdout
	if file != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
	}

	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type taskTrigger interface {
	Trigger(ctx context.Context, name string) (int, error)
}

// startupSweep rejects orders that went stale while the service was down;
// delayed checks scheduled in memory do not survive a restart.
type startupSweep struct {
	registry taskTrigger
}

func (s startupSweep) Start(ctx context.Context) error {
	_, err := s.registry.Trigger(ctx, jobs.RejectStaleOrdersTask)
	return err
}
