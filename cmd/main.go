package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/good-food/order-service/internal/app"
	"github.com/good-food/order-service/internal/config"
	"github.com/good-food/order-service/internal/handler"
	"github.com/good-food/order-service/internal/postgres"
	"github.com/good-food/order-service/internal/repo"
	"github.com/good-food/order-service/internal/service"
	"github.com/good-food/order-service/internal/streaming"
	"github.com/good-food/order-service/pkg/cache"
	"github.com/good-food/order-service/pkg/trm"

	_ "github.com/good-food/order-service/docs"
	"github.com/joho/godotenv"
)

// @title           Good Food Order Service API
// @version         1.0
// @description     Orders, menu meals and customers of the good-food platform
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db, conf.Orders.TTL)
	customersRepo := repo.NewCustomersRepo(db)
	mealsRepo := repo.NewMealsRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	sweeper := repo.NewSweeper(logger, ordersRepo, conf.Orders.SweepInterval)

	producer := streaming.NewProducer(logger, conf.Kafka)
	defer producer.Close()

	orderService := service.NewOrderService(logger, txManager, ordersRepo, orderCache, producer)
	customerService := service.NewCustomerService(logger, customersRepo)
	mealService := service.NewMealService(logger, mealsRepo)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	ordersHandler := handler.NewOrdersHandler(logger, orderService)
	customersHandler := handler.NewCustomersHandler(logger, customerService)
	mealsHandler := handler.NewMealsHandler(logger, mealService)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(ordersHandler, customersHandler, mealsHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, sweeper)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
