package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"rental-notification-service/internal/config"
	"rental-notification-service/internal/consumer"
	"rental-notification-service/internal/dispatch"
	"rental-notification-service/internal/handler"
	"rental-notification-service/internal/repository"
	"rental-notification-service/internal/sender"
	"rental-notification-service/internal/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	log.Info("Starting notification service...")

	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		log.WithError(err).Fatal("Could not load configuration")
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	m, err := migrate.New("file://db/migrations", cfg.MigrationURL())
	if err != nil {
		log.WithError(err).Fatal("Could not create migration instance")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.WithError(err).Fatal("Could not apply migration")
	}
	log.Info("Database migration successfully applied")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := newEmailProvider(ctx, cfg.Email)
	if err != nil {
		log.WithError(err).Fatal("Could not create email provider")
	}
	mailer := sender.NewLoggingSender(
		sender.NewRetryingSender(provider, cfg.Email.MaxAttempts, cfg.Email.InitialDelay),
		repository.NewPostgresEmailRepository(db),
	)

	templates, err := config.LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.WithError(err).Fatal("Could not load templates")
	}

	quickConnect := service.NewQuickConnectService(service.Options{
		Templates:        templates,
		Mailer:           mailer,
		Navigator:        dispatch.LogNavigator{},
		SendEmailEnabled: func() bool { return cfg.SendEmailEnabled },
	})

	log.WithField("kafka_servers", cfg.Kafka.BootstrapServers).Info("Connecting to Kafka")

	quickConnectConsumer := newConsumer(cfg.Kafka, cfg.Kafka.QuickConnectTopic, handler.NewQuickConnectHandler(quickConnect))
	defer quickConnectConsumer.Close()
	accountConsumer := newConsumer(cfg.Kafka, cfg.Kafka.AccountTopic, handler.NewAccountHandler())
	defer accountConsumer.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return quickConnectConsumer.Start(gctx) })
	g.Go(func() error { return accountConsumer.Start(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Consumer stopped with error")
		return
	}
	log.Info("Notification service stopped")
}

func newConsumer(cfg config.Kafka, topic string, h consumer.MessageHandler) *consumer.KafkaConsumer {
	kc, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.BootstrapServers,
		"group.id":          config.ConsumerGroup(cfg, topic),
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create Kafka consumer")
	}

	c, err := consumer.NewKafkaConsumer(kc, topic, h, consumer.WithPollTimeout(cfg.PollTimeout))
	if err != nil {
		log.WithError(err).WithField("topic", topic).Fatal("Failed to subscribe to topic")
	}
	return c
}

func newEmailProvider(ctx context.Context, cfg config.Email) (sender.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, err
		}
		return sender.NewSESEmailSender(ses.NewFromConfig(awsCfg), cfg.From), nil
	case "console":
		return sender.NewConsoleEmailSender(), nil
	default:
		return sender.NewSMTPEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From), nil
	}
}
