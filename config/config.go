package config

import (
	"log"

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

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatDB       int    `mapstructure:"REDIS_CHAT_DB"`
	RedisAlertQueueDB int    `mapstructure:"REDIS_ALERT_QUEUE_DB"`

	// External collaborators.
	ClassifierURL string `mapstructure:"CLASSIFIER_URL"`
	ChatAgentURL  string `mapstructure:"CHAT_AGENT_URL"`

	// Forum moderation thresholds (classifier score in [0,1]).
	ForumFlagThreshold  float64 `mapstructure:"FORUM_FLAG_THRESHOLD"`
	ForumBlockThreshold float64 `mapstructure:"FORUM_BLOCK_THRESHOLD"`

	// Chat conversation context TTL in minutes.
	ChatContextTTLMin int `mapstructure:"CHAT_CONTEXT_TTL_MIN"`
}

var AppConfig Config

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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_DB", 1)
	viper.SetDefault("REDIS_ALERT_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CLASSIFIER_URL", "http://localhost:9090/classify")
	viper.SetDefault("CHAT_AGENT_URL", "http://localhost:9091/converse")
	viper.SetDefault("FORUM_FLAG_THRESHOLD", 0.5)
	viper.SetDefault("FORUM_BLOCK_THRESHOLD", 0.85)
	viper.SetDefault("CHAT_CONTEXT_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
