package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/spf13/viper"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	configs := loadConfigFromEnv()

	// Optional YAML overrides for allocation presets and job schedules
	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		if err := applyFileOverrides(configs, path); err != nil {
			log.Println("error loading config overrides", err)
		}
	}
	return configs
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "roundup-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)
	configs.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", false)
	configs.Database.MigrationsPath = GetEnv("DB_MIGRATIONS_PATH", "migrations")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// API keys for internal routes
	configs.APIKey.Scheduler = GetEnv("SCHEDULER_API_KEY", "")
	configs.APIKey.Admin = GetEnv("ADMIN_API_KEY", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	// Scheduler config
	configs.Scheduler.Enabled = GetEnvAsBool("SCHEDULER_ENABLED", true)
	configs.Scheduler.DebitCron = GetEnv("SCHEDULER_DEBIT_CRON", "0 */6 * * *")
	configs.Scheduler.SweepCron = GetEnv("SCHEDULER_SWEEP_CRON", "30 2 * * *")
	configs.Scheduler.DebitTimeout = GetEnvAsDuration("SCHEDULER_DEBIT_TIMEOUT", 30*time.Second)
	configs.Scheduler.LockExpiry = GetEnvAsDuration("SCHEDULER_LOCK_EXPIRY", 2*time.Minute)
	configs.Scheduler.NoticeWindow = GetEnvAsDuration("SCHEDULER_NOTICE_WINDOW", 24*time.Hour)
	configs.Scheduler.MaxFailures = GetEnvAsInt("SCHEDULER_MAX_FAILURES", 3)
	configs.Scheduler.InsufficientRetry = GetEnvAsDuration("SCHEDULER_INSUFFICIENT_RETRY", 24*time.Hour)

	// Provider config
	configs.Providers.Payment = GetEnv("PAYMENT_PROVIDER", "mock")
	configs.Providers.RazorpayBaseURL = GetEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1")
	configs.Providers.RazorpayKeyID = GetEnv("RAZORPAY_KEY_ID", "")
	configs.Providers.RazorpayKeySecret = GetEnv("RAZORPAY_KEY_SECRET", "")
	configs.Providers.RazorpayPlanID = GetEnv("RAZORPAY_PLAN_ID", "")
	configs.Providers.WebhookSecret = GetEnv("WEBHOOK_SECRET", "")
	configs.Providers.MaxMandatePaise = GetEnvAsInt64("RAZORPAY_MAX_MANDATE_PAISE", 1500000)
	configs.Providers.Investment = GetEnv("INVESTMENT_PROVIDER", "mock")
	configs.Providers.MFBaseURL = GetEnv("MF_PROVIDER_URL", "")
	configs.Providers.MFAPIKey = GetEnv("MF_PROVIDER_API_KEY", "")
	configs.Providers.GoldBaseURL = GetEnv("GOLD_PROVIDER_URL", "")
	configs.Providers.GoldAPIKey = GetEnv("GOLD_PROVIDER_API_KEY", "")
	configs.Providers.Timeout = GetEnvAsDuration("PROVIDER_TIMEOUT", 15*time.Second)
	configs.Providers.MaxRetries = GetEnvAsInt("PROVIDER_MAX_RETRIES", 2)

	// Allocation presets
	configs.Allocation.DefaultProfile = GetEnv("ALLOCATION_DEFAULT_PROFILE", models.RiskMedium)
	configs.Allocation.Profiles = models.DefaultRiskAllocations()

	return configs
}

// fileOverrides mirrors the keys accepted in CONFIG_FILE
type fileOverrides struct {
	Scheduler struct {
		DebitCron string `mapstructure:"debit_cron"`
		SweepCron string `mapstructure:"sweep_cron"`
	} `mapstructure:"scheduler"`
	Allocation struct {
		DefaultProfile string                              `mapstructure:"default_profile"`
		Profiles       map[string][]models.AllocationSlice `mapstructure:"profiles"`
	} `mapstructure:"allocation"`
}

// applyFileOverrides reads a YAML/JSON/TOML file with viper and replaces the matching settings
func applyFileOverrides(configs *models.Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var overrides fileOverrides
	if err := v.Unmarshal(&overrides); err != nil {
		return err
	}

	if overrides.Scheduler.DebitCron != "" {
		configs.Scheduler.DebitCron = overrides.Scheduler.DebitCron
	}
	if overrides.Scheduler.SweepCron != "" {
		configs.Scheduler.SweepCron = overrides.Scheduler.SweepCron
	}
	if overrides.Allocation.DefaultProfile != "" {
		configs.Allocation.DefaultProfile = overrides.Allocation.DefaultProfile
	}
	for name, slices := range overrides.Allocation.Profiles {
		configs.Allocation.Profiles[name] = slices
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration parses values such as "30s" or "24h"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
