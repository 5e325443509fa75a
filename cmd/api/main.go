package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth-srv/config"
	configKafka "auth-srv/config/kafka"
	configPostgre "auth-srv/config/postgre"
	configRedis "auth-srv/config/redis"
	"auth-srv/internal/httpserver"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/encrypter"
	pkgJWT "auth-srv/pkg/jwt"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
)

// @title       Coffeenote Auth Service API
// @description Authentication and token service for the Coffeenote API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth_session
// @description Session id stored in HttpOnly cookie. Set by /api/login.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Session id in the Authorization header. Format: "Bearer {session_id}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Kafka producer (optional)
	producer, err := initializeProducer(ctx, logger, cfg)
	if err != nil {
		return
	}
	if producer != nil {
		defer configKafka.Disconnect()
	}

	// 7. Initialize Discord (optional)
	discordClient, err := discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 8. Initialize JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT manager initialized, issuer=%s ttl=%ds", cfg.JWT.Issuer, cfg.JWT.TTL)

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		Producer:    producer,

		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypter.New(),

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create HTTP server: ", err)
		return
	}

	// 10. Run until shutdown
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}

// initializeProducer connects to Kafka when brokers are configured.
// Returns nil without error when event streaming is disabled.
func initializeProducer(ctx context.Context, logger log.Logger, cfg *config.Config) (kafka.IProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Infof(ctx, "Kafka brokers not configured, audit event streaming disabled")
		return nil, nil
	}

	p, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return nil, err
	}
	logger.Infof(ctx, "Kafka producer connected, topic=%s", cfg.Kafka.Topic)
	return p, nil
}

func registerGracefulShutdown(logger log.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-ch
		logger.Infof(context.Background(), "Received signal %v, cleaning up", sig)
	}()
}
