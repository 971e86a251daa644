package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// AppConfig is the global configuration instance, set by Init.
var AppConfig *Config

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Redis     RedisConfig     `yaml:"redis"`
	Cors      CorsConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Locations LocationsConfig `yaml:"locations"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

type JWTConfig struct {
	SigningKey string        `yaml:"signing_key"`
	Expiry     time.Duration `yaml:"expiry"`
	Issuer     string        `yaml:"issuer"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or text
}

type RateLimitConfig struct {
	RPM int `yaml:"rpm"`
}

type LocationsConfig struct {
	Dir string `yaml:"dir"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			Mode:         "debug",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			LogLevel:        "warn",
		},
		JWT: JWTConfig{
			Expiry: 24 * time.Hour,
			Issuer: "patidestek",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RateLimit: RateLimitConfig{
			RPM: 1000,
		},
		Locations: LocationsConfig{
			Dir: "data/locations",
		},
	}
}

// Init loads configuration from config.yaml (when present) and environment
// variables, env taking precedence. A .env file is honoured in development.
func Init() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file loaded")
	}

	cfg := defaultConfig()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			logrus.WithError(err).Fatalf("parsing %s", path)
		}
	}

	applyEnvOverrides(cfg)

	AppConfig = cfg
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")
	setString(&cfg.Database.DSN, "MYSQL_DSN")
	setInt(&cfg.Database.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&cfg.Database.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setString(&cfg.JWT.SigningKey, "JWT_SIGNING_KEY")
	setDuration(&cfg.JWT.Expiry, "JWT_EXPIRY")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setInt(&cfg.RateLimit.RPM, "RATE_LIMIT_RPM")
	setString(&cfg.Locations.Dir, "LOCATIONS_DIR")
	setString(&cfg.Cors.FrontendURL, "FRONTEND_URL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}
