package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendulum/internal/logging"
	"github.com/san-kum/pendulum/internal/render"
)

const DefaultAddr = ":5000"

var ErrInvalidConfig = errors.New("invalid config")

// Config covers how the program is served and logged. The pendulum's
// physical constants and initial state are fixed in code and have no
// entry here.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Canvas CanvasConfig `yaml:"canvas"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Canvas: CanvasConfig{Width: render.DefaultWidth, Height: render.DefaultHeight},
		Log:    LogConfig{Level: "info", Encoding: logging.EncodingConsole},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Encoding {
	case logging.EncodingJSON, logging.EncodingConsole:
	default:
		return fmt.Errorf("%w: log.encoding must be json or console, got %q", ErrInvalidConfig, c.Log.Encoding)
	}
	return nil
}

func (c *Config) Scene() render.Scene {
	return render.Scene{Width: c.Canvas.Width, Height: c.Canvas.Height}
}
