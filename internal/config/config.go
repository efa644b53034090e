package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Graph   GraphConfig
	Logging LoggingConfig
	Network NetworkConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MetricsEnabled    bool
	AllowedOriginsCSV string
}

// AllowedOrigins splits AllowedOriginsCSV into trimmed, non-empty entries.
func (c HTTPConfig) AllowedOrigins() []string {
	var out []string
	for _, origin := range strings.Split(c.AllowedOriginsCSV, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

// GraphConfig describes connectivity to the Neo4j database holding the network.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool

	// File, when set, sends logs to a rotating file instead of stdout.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
}

// Source names where the network is loaded from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceFile    Source = "file"
	SourceNeo4j   Source = "neo4j"
)

// NetworkConfig selects the network and how unweighted edges get weights.
type NetworkConfig struct {
	Source  Source
	Dataset string

	// WeightSeed seeds the random weight policy. Zero means seed from the clock.
	WeightSeed int64
	MinWeight  int
	MaxWeight  int
	Workers    int
}

// Validate checks the network settings and reports every problem found.
func (c NetworkConfig) Validate() error {
	var result *multierror.Error
	switch c.Source {
	case SourceBuiltin, SourceNeo4j:
	case SourceFile:
		if c.Dataset == "" {
			result = multierror.Append(result, fmt.Errorf("NETWORK_DATASET is required when NETWORK_SOURCE=%s", SourceFile))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown NETWORK_SOURCE %q", c.Source))
	}
	if c.MinWeight <= 0 {
		result = multierror.Append(result, fmt.Errorf("NETWORK_MIN_WEIGHT must be positive, got %d", c.MinWeight))
	}
	if c.MaxWeight < c.MinWeight {
		result = multierror.Append(result, fmt.Errorf("NETWORK_MAX_WEIGHT %d is below NETWORK_MIN_WEIGHT %d", c.MaxWeight, c.MinWeight))
	}
	if c.Workers <= 0 {
		result = multierror.Append(result, fmt.Errorf("NETWORK_WORKERS must be positive, got %d", c.Workers))
	}
	return result.ErrorOrNil()
}

const (
	defaultHost             = "0.0.0.0"
	defaultPort             = 8080
	defaultReadTimeout      = 10 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultLogMaxSizeMB     = 100
	defaultLogMaxAgeDays    = 28
	defaultGraphMaxSessions = 10
	defaultMinWeight        = 1
	defaultMaxWeight        = 10
	defaultWorkers          = 4
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host:              valueOrDefault("SERVER_HOST", defaultHost),
			MetricsEnabled:    parseBoolWithDefault("SERVER_METRICS_ENABLED", false),
			AllowedOriginsCSV: os.Getenv("SERVER_ALLOWED_ORIGINS"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
			File:          os.Getenv("LOG_FILE"),
			MaxSizeMB:     parseIntWithDefault("LOG_MAX_SIZE_MB", defaultLogMaxSizeMB),
			MaxAgeDays:    parseIntWithDefault("LOG_MAX_AGE_DAYS", defaultLogMaxAgeDays),
		},
		Graph: GraphConfig{
			URI:            os.Getenv("GRAPH_URI"),
			Database:       valueOrDefault("GRAPH_DATABASE", ""),
			Username:       os.Getenv("GRAPH_USERNAME"),
			Password:       os.Getenv("GRAPH_PASSWORD"),
			MaxConnections: parseIntWithDefault("GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions),
		},
		Network: NetworkConfig{
			Source:    Source(strings.ToLower(valueOrDefault("NETWORK_SOURCE", string(SourceBuiltin)))),
			Dataset:   os.Getenv("NETWORK_DATASET"),
			MinWeight: parseIntWithDefault("NETWORK_MIN_WEIGHT", defaultMinWeight),
			MaxWeight: parseIntWithDefault("NETWORK_MAX_WEIGHT", defaultMaxWeight),
			Workers:   parseIntWithDefault("NETWORK_WORKERS", defaultWorkers),
		},
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	timeouts := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", defaultReadTimeout, &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", defaultWriteTimeout, &cfg.HTTP.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", defaultIdleTimeout, &cfg.HTTP.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
	}
	for _, t := range timeouts {
		d, err := parseDuration(t.key, t.fallback)
		if err != nil {
			return Config{}, err
		}
		*t.dst = d
	}

	if v := os.Getenv("NETWORK_WEIGHT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NETWORK_WEIGHT_SEED value %q: %w", v, err)
		}
		cfg.Network.WeightSeed = seed
	}

	if err := cfg.Network.Validate(); err != nil {
		return Config{}, fmt.Errorf("network config: %w", err)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
