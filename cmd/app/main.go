package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealerorders/cmd"
	httpadapter "dealerorders/internal/adapters/in/http"
	"dealerorders/internal/adapters/out/postgres"

	"cloud.google.com/go/pubsub"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"google.golang.org/api/option"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	configs := getConfigs(log)
	log.SetLevel(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs, log)

	redisClient := mustRedisConnect(ctx, configs, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	topic, closePubSub := mustPubSubTopic(ctx, configs, log)
	defer closePubSub()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, topic, log)
	if err != nil {
		log.WithError(err).Fatal("failed to build application")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.WithError(err).Fatal("failed to start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, log)
}

func getConfigs(log logrus.FieldLogger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.WithError(err).Warn("no .env file loaded, using process environment")
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	return config
}

func mustGormOpen(configs cmd.Config, log logrus.FieldLogger) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}

	if err = gormDB.Use(otelgorm.NewPlugin()); err != nil {
		log.WithError(err).Fatal("failed to install tracing plugin")
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("failed to migrate schema")
	}
	return gormDB
}

func mustRedisConnect(ctx context.Context, configs cmd.Config, log logrus.FieldLogger) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("addr", configs.RedisAddr).Fatal("failed to connect to redis")
	}
	return client
}

func mustPubSubTopic(ctx context.Context, configs cmd.Config, log logrus.FieldLogger) (*pubsub.Topic, func()) {
	if configs.PubSubProjectID == "" {
		return nil, func() {}
	}

	var opts []option.ClientOption
	if configs.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(configs.GoogleCredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, configs.PubSubProjectID, opts...)
	if err != nil {
		log.WithError(err).Fatal("failed to create pubsub client")
	}

	topic := client.Topic(configs.PubSubTopic)
	log.WithField("topic", configs.PubSubTopic).Info("publishing order events to pubsub")

	return topic, func() {
		topic.Stop()
		_ = client.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, log logrus.FieldLogger) {
	e := httpadapter.NewEcho(log)
	httpadapter.NewServer(app.CreateHTTPHandlers()).Register(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	err := e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server stopped")
	}
}
