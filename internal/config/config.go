// Package config loads the opencamera command configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pion/opencamera/internal/logging"
	"github.com/pion/opencamera/pkg/driver"
	"gopkg.in/yaml.v3"
)

// Defaults mirror opencamera.NoRequestedCamera and opencamera.LevelMultiCamera.
const (
	DefaultCameraID = -1
	DefaultLevel    = 9
)

// CameraConfig selects the camera to open.
type CameraConfig struct {
	ID    *int     `yaml:"id,omitempty"`    // negative = no preference
	Level *int     `yaml:"level,omitempty"` // reported platform capability level
	Fake  []string `yaml:"fake,omitempty"`  // facings of in-memory cameras, replaces device discovery
}

// LogConfig configures pion loggers.
type LogConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error, disabled
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // e.g. ":9100"; empty disables it
}

// Config aggregates all command configuration.
type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Camera.ID == nil {
		id := DefaultCameraID
		c.Camera.ID = &id
	}
	if c.Camera.Level == nil {
		level := DefaultLevel
		c.Camera.Level = &level
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks values that can't be defaulted.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := c.FakeFacings(); err != nil {
		return err
	}
	return nil
}

// CameraID returns the requested camera id.
func (c *Config) CameraID() int {
	if c.Camera.ID == nil {
		return DefaultCameraID
	}
	return *c.Camera.ID
}

// SetCameraID overrides the requested camera id.
func (c *Config) SetCameraID(id int) {
	c.Camera.ID = &id
}

// Level returns the reported platform level. Levels below DefaultLevel,
// including zero and negative ones, select the default camera only.
func (c *Config) Level() int {
	if c.Camera.Level == nil {
		return DefaultLevel
	}
	return *c.Camera.Level
}

// SetLevel overrides the reported platform level.
func (c *Config) SetLevel(level int) {
	c.Camera.Level = &level
}

// FakeFacings parses camera.fake into facings.
func (c *Config) FakeFacings() ([]driver.Facing, error) {
	facings := make([]driver.Facing, 0, len(c.Camera.Fake))
	for _, s := range c.Camera.Fake {
		f, ok := driver.ParseFacing(s)
		if !ok {
			return nil, fmt.Errorf("camera.fake: unknown facing %q", s)
		}
		facings = append(facings, f)
	}
	return facings, nil
}
