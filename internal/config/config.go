package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	configFileName = "litetable-analytics.yaml"

	defaultServerAddress  = "127.0.0.1"
	defaultGRPCPort       = 9090
	defaultMetricsPort    = 9091
	defaultStopTimeout    = 5
	defaultDimensionLabel = "Unknown"
	maxPort               = 65535
)

type Aggregation struct {
	DefaultDimension  string  `yaml:"default_dimension"`
	DefaultMetric     float64 `yaml:"default_metric"`
	SkipUnmatchedRows bool    `yaml:"skip_unmatched_rows"`
}

type Config struct {
	ServerAddress      string      `yaml:"server_address"`
	GRPCPort           int         `yaml:"grpc_port"`
	MetricsPort        int         `yaml:"metrics_port"`
	Debug              bool        `yaml:"debug"`
	StopTimeoutSeconds int         `yaml:"stop_timeout_seconds"`
	Aggregation        Aggregation `yaml:"aggregation"`
}

// Default is the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ServerAddress:      defaultServerAddress,
		GRPCPort:           defaultGRPCPort,
		MetricsPort:        defaultMetricsPort,
		StopTimeoutSeconds: defaultStopTimeout,
		Aggregation: Aggregation{
			DefaultDimension: defaultDimensionLabel,
		},
	}
}

// NewConfig loads litetable-analytics.yaml from the LiteTable directory. A missing file is not
// an error; the defaults are returned instead.
func NewConfig() (*Config, error) {
	liteTableDir, err := litetable.GetLitetableDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}

	configPath := filepath.Join(liteTableDir, configFileName)
	if _, err = os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// Load reads the file at path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Aggregation.DefaultDimension == "" {
		cfg.Aggregation.DefaultDimension = defaultDimensionLabel
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ServerAddress == "" {
		errGrp = append(errGrp, errors.New("server_address is required"))
	}
	if c.GRPCPort < 1 || c.GRPCPort > maxPort {
		errGrp = append(errGrp, fmt.Errorf("grpc_port must be between 1 and %d", maxPort))
	}
	if c.MetricsPort < 1 || c.MetricsPort > maxPort {
		errGrp = append(errGrp, fmt.Errorf("metrics_port must be between 1 and %d", maxPort))
	}
	if c.GRPCPort == c.MetricsPort {
		errGrp = append(errGrp, errors.New("grpc_port and metrics_port must differ"))
	}
	if c.StopTimeoutSeconds <= 0 {
		errGrp = append(errGrp, errors.New("stop_timeout_seconds must be positive"))
	}

	return errors.Join(errGrp...)
}

func (c *Config) StopTimeout() time.Duration {
	return time.Duration(c.StopTimeoutSeconds) * time.Second
}
