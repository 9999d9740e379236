// Package config provides configuration management for the game client.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Game           GameConfig           `yaml:"game"`
	Dispatcher     DispatcherConfig     `yaml:"dispatcher"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
	Database       DatabaseConfig       `yaml:"database"`
	Log            LogConfig            `yaml:"log"`
}

// ServerConfig holds the local control API configuration.
type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	SwaggerUser string   `yaml:"swagger_user"`
	SwaggerPass string   `yaml:"swagger_pass"`
	// WriteTimeout must cover a whole multi-batch sale, not a single game request.
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GameConfig holds the game server connection settings.
type GameConfig struct {
	BaseURL        string        `yaml:"base_url"`
	PasswordHash   string        `yaml:"password_hash"`
	SessionCookie  string        `yaml:"session_cookie"`
	AutosellMode   string        `yaml:"autosell_mode"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	UserAgent      string        `yaml:"user_agent"`
}

// DispatcherConfig holds the message dispatch worker pool settings.
type DispatcherConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// CircuitBreakerConfig is shared by the game transport and the database.
type CircuitBreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold"`
	SuccessThreshold int           `yaml:"success_threshold"`
	Timeout          time.Duration `yaml:"timeout"`
}

// DatabaseConfig holds MongoDB configuration for store-listing snapshots.
type DatabaseConfig struct {
	URI          string        `yaml:"uri"`
	DatabaseName string        `yaml:"database_name"`
	SnapshotTTL  time.Duration `yaml:"snapshot_ttl"`
	Enabled      bool          `yaml:"enabled"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8787",
			CORSOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    5 * time.Minute,
			ShutdownTimeout: 30 * time.Second,
		},
		Game: GameConfig{
			BaseURL:        "https://www.kingdomofloathing.com",
			AutosellMode:   "compact",
			RequestTimeout: 30 * time.Second,
			UserAgent:      "kol-client/1.0",
		},
		Dispatcher: DispatcherConfig{
			Workers:   2,
			QueueSize: 16,
		},
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold: 5,
			SuccessThreshold: 2,
			Timeout:          30 * time.Second,
		},
		Database: DatabaseConfig{
			URI:          "mongodb://localhost:27017",
			DatabaseName: "kol_client",
			SnapshotTTL:  7 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the optional YAML file named by CONFIG_FILE,
// and environment variables, in that order of precedence (env wins).
func Load() Config {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if fileCfg, err := LoadFile(path, cfg); err == nil {
			cfg = fileCfg
		}
	}

	applyEnv(&cfg)
	return cfg
}

// LoadFile overlays the YAML document at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	if err := yaml.Unmarshal(raw, &base); err != nil {
		return base, err
	}
	return base, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.CORSOrigins = parseCORSOrigins(os.Getenv("CORS_ORIGINS"), cfg.Server.CORSOrigins)
	cfg.Server.SwaggerUser = getEnv("SWAGGER_USER", cfg.Server.SwaggerUser)
	cfg.Server.SwaggerPass = getEnv("SWAGGER_PASS", cfg.Server.SwaggerPass)
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Game.BaseURL = getEnv("GAME_BASE_URL", cfg.Game.BaseURL)
	cfg.Game.PasswordHash = getEnv("GAME_PWD_HASH", cfg.Game.PasswordHash)
	cfg.Game.SessionCookie = getEnv("GAME_SESSION_COOKIE", cfg.Game.SessionCookie)
	cfg.Game.AutosellMode = getEnv("GAME_AUTOSELL_MODE", cfg.Game.AutosellMode)
	cfg.Game.RequestTimeout = getEnvDuration("GAME_REQUEST_TIMEOUT", cfg.Game.RequestTimeout)
	cfg.Game.UserAgent = getEnv("GAME_USER_AGENT", cfg.Game.UserAgent)

	cfg.Dispatcher.Workers = getEnvInt("DISPATCH_WORKERS", cfg.Dispatcher.Workers)
	cfg.Dispatcher.QueueSize = getEnvInt("DISPATCH_QUEUE_SIZE", cfg.Dispatcher.QueueSize)

	cfg.CircuitBreaker.FailureThreshold = getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", cfg.CircuitBreaker.FailureThreshold)
	cfg.CircuitBreaker.SuccessThreshold = getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", cfg.CircuitBreaker.SuccessThreshold)
	cfg.CircuitBreaker.Timeout = getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", cfg.CircuitBreaker.Timeout)

	cfg.Database.URI = getEnv("MONGODB_URI", cfg.Database.URI)
	cfg.Database.DatabaseName = getEnv("MONGODB_DATABASE", cfg.Database.DatabaseName)
	cfg.Database.SnapshotTTL = getEnvDuration("MONGODB_SNAPSHOT_TTL", cfg.Database.SnapshotTTL)
	cfg.Database.Enabled = getEnvBool("MONGODB_ENABLED", cfg.Database.Enabled)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = getEnvBool("LOG_PRETTY", cfg.Log.Pretty)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseCORSOrigins appends the comma separated origins in s to defaults.
func parseCORSOrigins(s string, defaults []string) []string {
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
