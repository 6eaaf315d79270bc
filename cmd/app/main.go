package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TechTalks/database"
	"TechTalks/internal/config"
	jwtPkg "TechTalks/pkg/jwt"
	"TechTalks/pkg/log"
	"TechTalks/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(log.Fields{"error": err.Error()}, "No .env file loaded, using process environment")
	}
	logger := log.NewLogger()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Invalid configuration")
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	conn, err := database.New(connectCtx, env.DatabaseConfig())
	cancel()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	tokens, err := jwtPkg.New(env.JWTSecret, env.TokenTTL)
	if err != nil {
		logger.Fatalf("Failed to create token manager: %v", err)
	}

	var redisServer redis.IRedis
	if env.TokenRevocation {
		redisServer, err = redis.New(env.RedisAddress, env.RedisPassword, env.RedisDB)
		if err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
	} else {
		log.Debug(log.Fields{"driver": env.DBDriver}, "Token revocation disabled")
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithEnv(env),
		config.WithDatabase(conn),
		config.WithTokenManager(tokens),
		config.WithRevocationStore(redisServer),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.RegisterHandler(); err != nil {
		logger.Fatalf("Failed to register handlers: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
