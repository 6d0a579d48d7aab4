package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Uploads  UploadConfig
	Auth     AuthConfig
	Museum   MuseumConfig
	Logger   LoggerConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

func (u UploadConfig) MaxSizeBytes() int64 {
	return u.MaxSizeMB << 20
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration
}

type MuseumConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "relic_gallery")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("UPLOAD_MAX_SIZE_MB", 16)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("MUSEUM_ENABLED", false)
	v.SetDefault("MUSEUM_BASE_URL", "https://api.harvardartmuseums.org")
	v.SetDefault("MUSEUM_API_KEY", "")
	v.SetDefault("MUSEUM_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Uploads: UploadConfig{
			Dir:       v.GetString("UPLOAD_DIR"),
			MaxSizeMB: v.GetInt64("UPLOAD_MAX_SIZE_MB"),
		},
		Auth: AuthConfig{
			AdminUsername: v.GetString("ADMIN_USERNAME"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			SessionSecret: v.GetString("SESSION_SECRET"),
			SessionTTL:    parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
		},
		Museum: MuseumConfig{
			Enabled: v.GetBool("MUSEUM_ENABLED"),
			BaseURL: v.GetString("MUSEUM_BASE_URL"),
			APIKey:  v.GetString("MUSEUM_API_KEY"),
			Timeout: parseDuration(v.GetString("MUSEUM_TIMEOUT"), 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("CORS_ALLOW_ORIGINS"),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
