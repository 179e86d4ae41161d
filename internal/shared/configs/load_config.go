package configs

import (
	"fmt"
	"strings"
	"time"

	"request-metrics/internal/shared/validators"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("aggregation.eviction_interval", "10s")
	v.SetDefault("aggregation.max_clock_skew", "5s")
	v.SetDefault("aggregation.recent_capacity", 10)
	v.SetDefault("archive.enabled", false)
}

// LoadConfig reads configuration from file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	var validationErrors []string
	if err := validate.Struct(&cfg); err != nil {
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		} else {
			validationErrors = append(validationErrors, err.Error())
		}
	}
	validationErrors = append(validationErrors, checkDurations(&cfg.Aggregation)...)
	if len(validationErrors) > 0 {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// checkDurations rejects negative durations, which the struct tags let through.
func checkDurations(agg *AggregationConfig) []string {
	fields := []struct {
		name string
		d    time.Duration
	}{
		{"aggregation.bucketduration", agg.BucketDuration},
		{"aggregation.retention", agg.Retention},
		{"aggregation.evictioninterval", agg.EvictionInterval},
		{"aggregation.maxclockskew", agg.MaxClockSkew},
	}
	var msgs []string
	for _, f := range fields {
		if f.d < 0 {
			msgs = append(msgs, fmt.Sprintf("%s (positive)", f.name))
		}
	}
	return msgs
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// "Config.Aggregation.Retention" -> "aggregation.retention"
	if ns := e.StructNamespace(); ns != "" {
		parts := strings.Split(ns, ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "required_if":
		return fmt.Sprintf("%s (required_if=%s)", field, e.Param())
	case "min", "max", "gtefield":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
