package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mgdmdev/mgpay-test/cmd"
	"github.com/mgdmdev/mgpay-test/internal/adapters/out/postgres/orderrepo"
	"github.com/mgdmdev/mgpay-test/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// A missing .env file is fine in container environments where the
	// variables come from the orchestrator.
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file loaded, using process environment")
	}

	config := getConfig()

	db, err := gorm.Open(gorm_postgres.Open(dsn(config)), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db, logger)
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "3000"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOr("DB_NAME", "mgpay"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		ServiceName:  envOr("SERVICE_NAME", "MGPay Test App"),
		ServiceToken: os.Getenv("SERVICE_TOKEN"),
		// Fail closed: only an explicit "false" disables webhook auth.
		WebhookStrictAuth: envOr("WEBHOOK_STRICT_AUTH", "true") != "false",

		PaystackBaseURL:   os.Getenv("PAYSTACK_BASE_URL"),
		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackTimeout:   envDuration("PAYSTACK_TIMEOUT", 10*time.Second),

		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),

		StalePaymentThreshold: envDuration("STALE_PAYMENT_THRESHOLD", time.Hour),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func dsn(config cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))

	servers.RegisterHandlers(e, root.CreateHTTPServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
