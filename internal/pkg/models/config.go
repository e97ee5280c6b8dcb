package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	NSQ        NSQConfig
	JWT        JWTConfig
	APIKey     APIKeyConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
	Scheduler  SchedulerConfig
	Providers  ProvidersConfig
	Allocation AllocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	AutoMigrate    bool
	MigrationsPath string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used for outbound notices
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys accepted on internal routes
type APIKeyConfig struct {
	Scheduler string
	Admin     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// SchedulerConfig drives the debit and sweep jobs
type SchedulerConfig struct {
	Enabled           bool
	DebitCron         string
	SweepCron         string
	DebitTimeout      time.Duration
	LockExpiry        time.Duration
	NoticeWindow      time.Duration
	MaxFailures       int
	InsufficientRetry time.Duration
}

// ProvidersConfig selects and configures the external providers
type ProvidersConfig struct {
	Payment           string // "razorpay" or "mock"
	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayPlanID    string
	WebhookSecret     string
	MaxMandatePaise   int64

	Investment  string // "http" or "mock"
	MFBaseURL   string
	MFAPIKey    string
	GoldBaseURL string
	GoldAPIKey  string
	Timeout     time.Duration
	MaxRetries  int
}

// AllocationConfig holds the risk presets, percentages in declaration order
type AllocationConfig struct {
	DefaultProfile string
	Profiles       map[string][]AllocationSlice
}
