package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/thirdparty/rabbitmq"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

// The notifier drains order-created events and forwards each one to the
// back-office webhook so new custom orders get a follow-up.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Notifier.WebhookURL == "" {
		logger.Fatal("NOTIFIER_WEBHOOK_URL is required")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Notifier.WebhookURL,
		cfg.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("order notifier running", zap.String("webhook", cfg.Notifier.WebhookURL))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down notifier")
}
