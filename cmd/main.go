package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/fleetline/driver-assist/docs"
	"github.com/fleetline/driver-assist/internal/app"
	"github.com/fleetline/driver-assist/internal/config"
	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/format"
	"github.com/fleetline/driver-assist/internal/gateway"
	"github.com/fleetline/driver-assist/internal/handler"
	"github.com/fleetline/driver-assist/internal/jobs"
	"github.com/fleetline/driver-assist/internal/service"
	"github.com/fleetline/driver-assist/pkg/cache"

	"github.com/joho/godotenv"
)

// @title           Driver Assist API
// @version         1.0
// @description     Backend-for-frontend for delivery drivers: daily summaries, order details, confirmations and issue reports proxied to the order service.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	gw := gateway.New(logger, conf.Backend)
	driverCache := cache.NewLRUCache[entities.Driver](conf.Cache.Capacity, conf.Cache.TTL)
	formatter := format.New()

	orderService := service.NewOrderService(logger, gw, driverCache, formatter)

	httpHandler := handler.NewHTTPHandler(logger, orderService, conf.Env)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Events, orderService)
	healthProbe := jobs.NewHealthProbeJob(orderService, conf.HealthProbe.Schedule, logger)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(driverCache, healthProbe)

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
