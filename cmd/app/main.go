package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	rabbitmqout "ordering/internal/adapters/out/rabbitmq"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	client, err := rabbitmq.NewClient(configs.AMQPURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			logger.Error("Failed to close RabbitMQ client", "error", closeErr)
		}
	}()
	if err = declareQueues(client, configs); err != nil {
		log.Fatalf("Failed to declare queues: %v", err)
	}

	publisher := rabbitmqout.NewEventPublisher(client, rabbitmqout.Queues{
		PaymentRequest:            configs.PaymentRequestQueue,
		RestaurantApprovalRequest: configs.RestaurantApprovalRequestQueue,
	}, kernel.NewUUID)

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	for _, consumer := range app.CreateConsumers(client) {
		g.Go(func() error {
			return consumer.Run(gctx)
		})
	}

	e, err := newWebServer(gctx, app)
	if err != nil {
		log.Fatalf("Failed to set up HTTP server: %v", err)
	}
	g.Go(func() error {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("Service stopped with error", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config, err := cmd.ParseConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func declareQueues(client *rabbitmq.Client, configs cmd.Config) error {
	for _, name := range []string{
		configs.PaymentRequestQueue,
		configs.PaymentResponseQueue,
		configs.RestaurantApprovalRequestQueue,
		configs.RestaurantApprovalResponseQueue,
		configs.RestaurantMenuQueue,
	} {
		if _, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
			Name:    name,
			Durable: true,
		}); err != nil {
			return fmt.Errorf("queue %s: %w", name, err)
		}
	}
	return nil
}

func newWebServer(ctx context.Context, app cmd.CompositionRoot) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	app.CreateHTTPServer().Register(e, validator)
	return e, nil
}
