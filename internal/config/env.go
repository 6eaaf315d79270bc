package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"TechTalks/database"
	mongoDB "TechTalks/database/mongo"
	"TechTalks/internal/api/auth"
	"TechTalks/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

type Env struct {
	AppPort string
	AppEnv  string

	DBDriver    database.Driver
	MongoURI    string
	DBName      string
	PostgresDSN string

	JWTSecret       string
	TokenTTL        time.Duration
	TokenRevocation bool

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	CORSOrigins    string
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

// LoadEnv reads the process environment. Call it after godotenv.Load so a
// local .env file is taken into account.
func LoadEnv() (Env, error) {
	env := Env{
		AppPort: envString("APP_PORT", envString("PORT", "5000")),
		AppEnv:  envString("APP_ENV", EnvDevelopment),

		DBDriver:    database.Driver(strings.ToLower(envString("DB_DRIVER", string(database.DriverMongo)))),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      envString("DB_NAME", "techBlogDB"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		JWTSecret:       os.Getenv("JWT_ACCESS_TOKEN_SECRET"),
		TokenTTL:        envDuration("TOKEN_TTL", 24*time.Hour),
		TokenRevocation: envBool("TOKEN_REVOCATION", false),

		RedisAddress:  envString("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		CORSOrigins:    envString("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 100),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if env.MongoURI == "" && os.Getenv("DB_USER") != "" {
		env.MongoURI = mongoDB.AtlasURI(os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_HOST"))
	}

	if env.JWTSecret == "" {
		return Env{}, fmt.Errorf("JWT_ACCESS_TOKEN_SECRET is required")
	}

	switch env.DBDriver {
	case database.DriverMongo:
		if env.MongoURI == "" {
			return Env{}, fmt.Errorf("MONGO_URI or DB_USER/DB_PASS/DB_HOST is required for the mongo driver")
		}
	case database.DriverPostgres:
		if env.PostgresDSN == "" {
			return Env{}, fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
		}
	case database.DriverMemory:
	default:
		return Env{}, fmt.Errorf("unknown DB_DRIVER %q", env.DBDriver)
	}

	return env, nil
}

func (e Env) IsProduction() bool {
	return e.AppEnv == EnvProduction
}

func (e Env) DatabaseConfig() database.Config {
	return database.Config{
		Driver:       e.DBDriver,
		MongoURI:     e.MongoURI,
		DatabaseName: e.DBName,
		PostgresDSN:  e.PostgresDSN,
	}
}

// CookieConfig relaxes the token cookie outside production so it works over
// plain http on localhost.
func (e Env) CookieConfig() auth.CookieConfig {
	if e.IsProduction() {
		return auth.CookieConfig{Secure: true, SameSite: fiber.CookieSameSiteNoneMode}
	}
	return auth.CookieConfig{Secure: false, SameSite: fiber.CookieSameSiteStrictMode}
}

func (e Env) RateLimit() middleware.RateLimit {
	return middleware.RateLimit{
		PerSecond: rate.Limit(e.RateLimitRPS),
		Burst:     e.RateLimitBurst,
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	n, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
