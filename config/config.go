package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Store identity and scheduling.
	StoreName     string `mapstructure:"STORE_NAME"`
	StoreTimezone string `mapstructure:"STORE_TIMEZONE"`

	// Initial owner credentials, seeded on first boot.
	OwnerEmail    string `mapstructure:"OWNER_EMAIL"`
	OwnerPassword string `mapstructure:"OWNER_PASSWORD"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe checkout.
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	CheckoutSuccessURL  string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL   string `mapstructure:"CHECKOUT_CANCEL_URL"`
	Currency            string `mapstructure:"CURRENCY"`

	// Cloudinary (product photos).
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
}

var AppConfig Config

// storeLocation caches the parsed store timezone.
var storeLocation *time.Location

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORE_NAME", "Ironhorse Motorcycles")
	viper.SetDefault("STORE_TIMEZONE", "America/Denver")
	viper.SetDefault("OWNER_EMAIL", "owner@ironhorse.local")
	viper.SetDefault("OWNER_PASSWORD", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CURRENCY", "usd")
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(AppConfig.StoreTimezone)
	if err != nil {
		log.Fatalf("Invalid STORE_TIMEZONE %q: %v", AppConfig.StoreTimezone, err)
	}
	storeLocation = loc
}

// StoreLocation returns the store's canonical timezone. All slot
// arithmetic happens in this location.
func StoreLocation() *time.Location {
	if storeLocation == nil {
		loc, err := time.LoadLocation(AppConfig.StoreTimezone)
		if err != nil {
			return time.UTC
		}
		storeLocation = loc
	}
	return storeLocation
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
