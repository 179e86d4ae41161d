package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Ingest      IngestConfig      `mapstructure:"ingest"`
	Archive     ArchiveConfig     `mapstructure:"archive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	// CORSAllowedOrigins lists the browser origins allowed to call the API. Empty disables CORS.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// AggregationConfig controls windowing and eviction.
type AggregationConfig struct {
	BucketDuration   time.Duration `mapstructure:"bucket_duration" validate:"required"`
	Retention        time.Duration `mapstructure:"retention" validate:"required,gtefield=BucketDuration"`
	EvictionInterval time.Duration `mapstructure:"eviction_interval" validate:"required"`
	MaxClockSkew     time.Duration `mapstructure:"max_clock_skew"`
	RecentCapacity   int           `mapstructure:"recent_capacity" validate:"required,min=1,max=1000"`
}

// IngestConfig holds event admission rules. An empty allow-list accepts any region.
type IngestConfig struct {
	AllowedRegions []string `mapstructure:"allowed_regions" validate:"dive,required,max=32"`
}

// ArchiveConfig controls persistence of evicted windows.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	RootDir string `mapstructure:"root_dir" validate:"required_if=Enabled true"`
}
