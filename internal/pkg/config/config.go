package config

import (
	"log"
	"strings"

	"github.com/gorent/gorent/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from environment variables, with an
// optional env file for local development. Environment variables always
// win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("config file not loaded, using environment only:", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "rental-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_TOPIC", "rental.events")

	v.SetDefault("GATEWAY_TIMEOUT_SEC", 10)

	v.SetDefault("PAYMENT_CURRENCY", "USD")
	v.SetDefault("PAYMENT_PENDING_TTL_MIN", 30)

	v.SetDefault("SWEEP_INTERVAL_SEC", 300)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "stdout")
	v.SetDefault("LOG_FILE_PATH", "logs/rental.log")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Gateway.BaseURL = v.GetString("GATEWAY_BASE_URL")
	configs.Gateway.APIKey = v.GetString("GATEWAY_API_KEY")
	configs.Gateway.SuccessURL = v.GetString("GATEWAY_SUCCESS_URL")
	configs.Gateway.CancelURL = v.GetString("GATEWAY_CANCEL_URL")
	configs.Gateway.TimeoutSec = v.GetInt("GATEWAY_TIMEOUT_SEC")

	configs.Payment.Currency = v.GetString("PAYMENT_CURRENCY")
	configs.Payment.PendingTTLMin = v.GetInt("PAYMENT_PENDING_TTL_MIN")

	configs.Scheduler.SweepIntervalSec = v.GetInt("SWEEP_INTERVAL_SEC")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.Type = v.GetString("LOG_TYPE")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
