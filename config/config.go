package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // registers the "libsql" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
)

type Config struct {
	App struct {
		Env             string `env:"APP_ENV" envDefault:"development"`
		Port            string `env:"PORT"    envDefault:"3000"`
		AllowedOrigins  []string
		ExternalTimeout time.Duration
	}
	DB struct {
		Driver      string `env:"DB_DRIVER" envDefault:"libsql"`
		URL         string `env:"DB_URL"`
		AuthToken   string `env:"DB_AUTH_TOKEN"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	}
	JWT struct {
		Secret     string `env:"JWT_SECRET"`
		ExpiryDays int    `env:"JWT_EXPIRY_DAYS" envDefault:"7"`
	}
	NFT struct {
		BaseURL           string `env:"NFT_API_BASE_URL"`
		APIKey            string `env:"NFT_API_KEY"`
		ContractAddress   string `env:"NFT_CONTRACT_ADDRESS"`
		RequestsPerSecond int    `env:"NFT_API_RPS" envDefault:"5"`
	}
	GameAPI struct {
		BaseURL string `env:"GAME_API_BASE_URL"`
	}
	Metadata struct {
		Bucket          string `env:"METADATA_BUCKET"`
		Region          string `env:"METADATA_REGION"`
		Endpoint        string `env:"METADATA_ENDPOINT"`
		AccessKeyID     string `env:"METADATA_ACCESS_KEY_ID"`
		AccessKeySecret string `env:"METADATA_ACCESS_KEY_SECRET"`
	}
	Competition struct {
		RefreshMinutes int `env:"COMPETITION_REFRESH_MINUTES" envDefault:"0"`
	}
	// Seasons are the years with historical result and leaderboard tables.
	Seasons []string
}

// SessionTTL is the lifetime of issued session tokens.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.JWT.ExpiryDays) * 24 * time.Hour
}

var seasonPattern = regexp.MustCompile(`^\d{4}$`)

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "3000")
	cfg.App.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "*"))
	timeoutSeconds, err := getEnvAsInt("EXTERNAL_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cfg.App.ExternalTimeout = time.Duration(timeoutSeconds) * time.Second

	// --- Database Configuration ---
	cfg.DB.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverLibSQL))
	cfg.DB.URL = getEnv("DB_URL", "")
	cfg.DB.AuthToken = getEnv("DB_AUTH_TOKEN", "")
	cfg.DB.AutoMigrate = getEnv("DB_AUTO_MIGRATE", "false") == "true"
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	if cfg.DB.Driver != DriverLibSQL && cfg.DB.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	// --- JWT Configuration ---
	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	cfg.JWT.ExpiryDays, err = getEnvAsInt("JWT_EXPIRY_DAYS", 7)
	if err != nil {
		return nil, err
	}

	// --- External services ---
	cfg.NFT.BaseURL = getEnv("NFT_API_BASE_URL", "https://eth-mainnet.g.alchemy.com/nft/v2")
	cfg.NFT.APIKey = getEnv("NFT_API_KEY", "")
	cfg.NFT.ContractAddress = getEnv("NFT_CONTRACT_ADDRESS", "0x03f5CeE0d698c24A42A396EC6BDAEe014057d4c8")
	cfg.NFT.RequestsPerSecond, err = getEnvAsInt("NFT_API_RPS", 5)
	if err != nil {
		return nil, err
	}
	if cfg.NFT.APIKey == "" {
		log.Println("WARNING: NFT_API_KEY is not set; NFT ownership lookups will fail.")
	}

	cfg.GameAPI.BaseURL = getEnv("GAME_API_BASE_URL", "https://game-api.nfteams.club")

	cfg.Metadata.Bucket = getEnv("METADATA_BUCKET", "nft-meta.nfteams.club")
	cfg.Metadata.Region = getEnv("METADATA_REGION", "ap-southeast-2")
	cfg.Metadata.Endpoint = getEnv("METADATA_ENDPOINT", "")
	cfg.Metadata.AccessKeyID = getEnv("METADATA_ACCESS_KEY_ID", "")
	cfg.Metadata.AccessKeySecret = getEnv("METADATA_ACCESS_KEY_SECRET", "")

	cfg.Competition.RefreshMinutes, err = getEnvAsInt("COMPETITION_REFRESH_MINUTES", 0)
	if err != nil {
		return nil, err
	}

	cfg.Seasons = splitList(getEnv("SEASONS", "2023,2024,2025"))
	for _, s := range cfg.Seasons {
		// Season years end up in table names, so only plain years are accepted.
		if !seasonPattern.MatchString(s) {
			return nil, fmt.Errorf("invalid season %q in SEASONS", s)
		}
	}

	return cfg, nil
}

// ConnectDB opens the database with the dialector matching cfg.DB.Driver.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DB.URL)
	default:
		dialector = sqlite.New(sqlite.Config{
			DriverName: DriverLibSQL,
			DSN:        libsqlDSN(cfg.DB.URL, cfg.DB.AuthToken),
		})
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Printf("Successfully connected to %s database", cfg.DB.Driver)
	return db, nil
}

func libsqlDSN(url, authToken string) string {
	if authToken == "" || strings.Contains(url, "authToken=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "authToken=" + authToken
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
