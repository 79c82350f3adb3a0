package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Gateway   GatewayConfig
	Payment   PaymentConfig
	Scheduler SchedulerConfig
	Logger    LoggerConfig
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
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
	Topic   string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// GatewayConfig contains the external checkout provider configuration
type GatewayConfig struct {
	BaseURL    string
	APIKey     string
	SuccessURL string
	CancelURL  string
	TimeoutSec int
}

// PaymentConfig contains payment reconciliation policy
type PaymentConfig struct {
	Currency      string
	PendingTTLMin int // minutes a checkout session may stay pending before expiry
}

// SchedulerConfig contains background sweep configuration
type SchedulerConfig struct {
	SweepIntervalSec int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
