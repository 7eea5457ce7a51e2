package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort              string
	AppEnv               string
	CatalogBaseURL       string
	OrderAPIBaseURL      string
	PaymentBaseURL       string
	PaymentAPIKey        string
	PaymentCallbackToken string
	CartStorageDir       string
	CartStorageKey       string
	RedisAddr            string
	Currency             string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:              getenv("APP_PORT", "8080"),
		AppEnv:               getenv("APP_ENV", "development"),
		CatalogBaseURL:       getenv("CATALOG_BASE_URL", "http://localhost:9001"),
		OrderAPIBaseURL:      getenv("ORDER_API_BASE_URL", "http://localhost:9002"),
		PaymentBaseURL:       getenv("PAYMENT_BASE_URL", "http://localhost:9003"),
		PaymentAPIKey:        os.Getenv("PAYMENT_API_KEY"),
		PaymentCallbackToken: os.Getenv("PAYMENT_CALLBACK_TOKEN"),
		CartStorageDir:       getenv("CART_STORAGE_DIR", "./data"),
		CartStorageKey:       getenv("CART_STORAGE_KEY", "cart"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		Currency:             getenv("CURRENCY", "USD"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
