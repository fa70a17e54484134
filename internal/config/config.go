package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OAuth     OAuthConfig     `mapstructure:"oauth"`
	AI        AIConfig        `mapstructure:"ai"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
	// Timezone is the zone daily reward caps roll over in.
	Timezone string `mapstructure:"timezone"`
	// FrontRedirectURL is where the OAuth callback sends the browser.
	FrontRedirectURL string `mapstructure:"front_redirect_url"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessExpire  time.Duration `mapstructure:"access_expire_minutes"`
	RefreshExpire time.Duration `mapstructure:"refresh_expire_hours"`
}

type OAuthConfig struct {
	KakaoClientID     string `mapstructure:"kakao_client_id"`
	KakaoClientSecret string `mapstructure:"kakao_client_secret"`
	KakaoRedirectURL  string `mapstructure:"kakao_redirect_url"`
}

type AIConfig struct {
	Address        string `mapstructure:"address"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DEVITA")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	viper.BindEnv("jwt.access_secret", "JWT_ACCESS_SECRET")
	viper.BindEnv("jwt.refresh_secret", "JWT_REFRESH_SECRET")

	// OAuth
	viper.BindEnv("oauth.kakao_client_id", "KAKAO_CLIENT_ID")
	viper.BindEnv("oauth.kakao_client_secret", "KAKAO_CLIENT_SECRET")
	viper.BindEnv("oauth.kakao_redirect_url", "KAKAO_REDIRECT_URL")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("server.front_redirect_url", "FRONT_REDIRECT_URL")

	// AI
	viper.BindEnv("ai.address", "AI_ADDRESS")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.AccessExpire = cfg.JWT.AccessExpire * time.Minute
	cfg.JWT.RefreshExpire = cfg.JWT.RefreshExpire * time.Hour

	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "Asia/Seoul"
	}

	if cfg.Server.Mode == "release" {
		if len(cfg.JWT.AccessSecret) < 32 {
			return nil, fmt.Errorf("JWT access secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.AccessSecret))
		}
		if len(cfg.JWT.RefreshSecret) < 32 {
			return nil, fmt.Errorf("JWT refresh secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.RefreshSecret))
		}
		if cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
			return nil, fmt.Errorf("JWT access and refresh secrets must differ")
		}
	}

	return &cfg, nil
}
