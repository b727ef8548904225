package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. BIKESHARE_DATA_DIR
const EnvPrefix = "BIKESHARE"

// Config holds all application-level configuration
type Config struct {
	// Datasets
	DataDir string  `yaml:"data_dir" envconfig:"DATA_DIR" default:"."`
	Cities  CityMap `yaml:"cities" envconfig:"CITIES"` // city -> file, path or postgres URL

	// Postgres sources
	ConnectRetries int `yaml:"connect_retries" envconfig:"CONNECT_RETRIES" default:"3"`

	// Output
	Logging     LoggingConfig `yaml:"logging" envconfig:"LOG"`
	MetricsFile string        `yaml:"metrics_file" envconfig:"METRICS_FILE"` // empty disables the dump
}

// CityMap decodes "city:location,city:location" from the environment.
// Only the first colon separates, so locations may be postgres URLs.
type CityMap map[string]string

// Decode implements envconfig.Decoder
func (m *CityMap) Decode(value string) error {
	out := CityMap{}
	for _, item := range strings.Split(value, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		city, loc, ok := strings.Cut(item, ":")
		if !ok {
			return fmt.Errorf("invalid city entry %q, want city:location", item)
		}
		out[city] = loc
	}
	*m = out
	return nil
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"warn"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
}

// Load reads defaults and environment variables, then layers the optional YAML file
// (BIKESHARE_CONFIG_FILE, default bikeshare.yaml) underneath explicit env values.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getEnv(EnvPrefix+"_CONFIG_FILE", "bikeshare.yaml")
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, keys, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, keys, cfg)
	}

	cfg.Cities = normalizeCities(cfg.Cities)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile also returns the top-level keys present, so zero values written in the file still count
func loadFromFile(path string) (*Config, map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	keys := make(map[string]bool, len(raw))
	for k := range raw {
		keys[k] = true
	}
	return &cfg, keys, nil
}

// mergeConfigs takes file values unless the matching env var was set explicitly
func mergeConfigs(file Config, fileKeys map[string]bool, env Config) Config {
	out := env
	if file.DataDir != "" && !envSet("DATA_DIR") {
		out.DataDir = file.DataDir
	}
	if fileKeys["connect_retries"] && !envSet("CONNECT_RETRIES") {
		out.ConnectRetries = file.ConnectRetries
	}
	if file.MetricsFile != "" && !envSet("METRICS_FILE") {
		out.MetricsFile = file.MetricsFile
	}
	if file.Logging.Level != "" && !envSet("LOG_LEVEL") {
		out.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" && !envSet("LOG_FORMAT") {
		out.Logging.Format = file.Logging.Format
	}

	cities := make(CityMap, len(file.Cities)+len(env.Cities))
	for k, v := range file.Cities {
		cities[k] = v
	}
	for k, v := range env.Cities {
		cities[k] = v
	}
	if len(cities) > 0 {
		out.Cities = cities
	}
	return out
}

func normalizeCities(in CityMap) CityMap {
	if len(in) == 0 {
		return nil
	}
	out := make(CityMap, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.ConnectRetries < 0 {
		return fmt.Errorf("connect_retries must not be negative, got %d", c.ConnectRetries)
	}
	for city, loc := range c.Cities {
		if city == "" || loc == "" {
			return fmt.Errorf("city entries need a name and a location")
		}
	}
	return nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + key)
	return ok
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
