package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPAddr       string
	GRPCHealthAddr string

	// Order store. Empty means the binding is not configured.
	DatabaseURL string

	// Product store. Mongo wins over the seed file when both are set.
	ProductsMongoURI   string
	ProductsMongoDB    string
	ProductsCollection string
	ProductsSeedFile   string

	EventsAMQPURL  string
	EventsExchange string

	SwaggerEnabled   bool
	FetchConcurrency int
	ShutdownTimeout  time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		AppEnv:             getenv("APP_ENV", "dev"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		GRPCHealthAddr:     getenv("GRPC_HEALTH_ADDR", ""),
		DatabaseURL:        getenv("DATABASE_URL", ""),
		ProductsMongoURI:   getenv("PRODUCTS_MONGO_URI", ""),
		ProductsMongoDB:    getenv("PRODUCTS_MONGO_DB", "storefront"),
		ProductsCollection: getenv("PRODUCTS_COLLECTION", "products"),
		ProductsSeedFile:   getenv("PRODUCTS_SEED_FILE", ""),
		EventsAMQPURL:      getenv("EVENTS_AMQP_URL", ""),
		EventsExchange:     getenv("EVENTS_EXCHANGE", "orders.events"),
		SwaggerEnabled:     getenvBool("SWAGGER_ENABLED", false),
		FetchConcurrency:   getenvInt("FETCH_CONCURRENCY", 10),
		ShutdownTimeout:    getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
