package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Auth       Auth
	OpenRouter OpenRouter
	RateLimit  RateLimit
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	// JWTSecret verifies HS512 bearer tokens issued by the identity service.
	JWTSecret string
	// AdminEnforcement gates question-management routes behind AdminUserIDs.
	AdminEnforcement bool
	AdminUserIDs     []string
}

type OpenRouter struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	// AppURL and AppName are optional attribution headers for the provider.
	AppURL  string
	AppName string
}

type RateLimit struct {
	// RedisAddr empty disables rate limiting on AI endpoints.
	RedisAddr     string
	RedisPassword string
	Limit         int
	WindowSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("DEFAULT_AI_MODEL", "google/gemini-3-flash-preview")
	viper.SetDefault("AI_RATE_LIMIT", 30)
	viper.SetDefault("AI_RATE_WINDOW_SECONDS", 60)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.AdminEnforcement = viper.GetBool("ADMIN_ENFORCEMENT")
	config.Auth.AdminUserIDs = viper.GetStringSlice("ADMIN_USER_IDS")

	config.OpenRouter.APIKey = viper.GetString("OPENROUTER_API_KEY")
	config.OpenRouter.BaseURL = viper.GetString("OPENROUTER_BASE_URL")
	config.OpenRouter.DefaultModel = viper.GetString("DEFAULT_AI_MODEL")
	config.OpenRouter.AppURL = viper.GetString("APP_URL")
	config.OpenRouter.AppName = viper.GetString("APP_NAME")

	config.RateLimit.RedisAddr = viper.GetString("REDIS_ADDR")
	config.RateLimit.RedisPassword = viper.GetString("REDIS_PASSWORD")
	config.RateLimit.Limit = viper.GetInt("AI_RATE_LIMIT")
	config.RateLimit.WindowSeconds = viper.GetInt("AI_RATE_WINDOW_SECONDS")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
