package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/ps-vitor/homefolio/internal/charts"
	"github.com/ps-vitor/homefolio/internal/scraping"
)

const (
	EngineHTTP  = "http"
	EngineColly = "colly"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
	Charts   ChartsConfig   `yaml:"charts"`
}

type AppConfig struct {
	Name  string `yaml:"name"`
	Env   string `yaml:"env"`
	Debug bool   `yaml:"debug"`
	Port  int    `yaml:"port"`
}

type ScrapingConfig struct {
	Engine    string          `yaml:"engine"`
	UserAgent string          `yaml:"user_agent"`
	Timeout   time.Duration   `yaml:"timeout"`
	Rules     []scraping.Rule `yaml:"rules"`
}

type ChartsConfig struct {
	PageTitle        string  `yaml:"page_title"`
	Width            string  `yaml:"width"`
	Height           string  `yaml:"height"`
	Theme            string  `yaml:"theme"`
	Currency         string  `yaml:"currency"`
	IndexName        string  `yaml:"index_name"`
	LabelRotation    float64 `yaml:"label_rotation"`
	MarkerSize       int     `yaml:"marker_size"`
	SVGTitle         string  `yaml:"svg_title"`
	SVGWidth         int     `yaml:"svg_width"`
	SVGHeight        int     `yaml:"svg_height"`
	TooltipScriptURL string  `yaml:"tooltip_script_url"`
}

// Options maps the YAML section onto renderer options.
func (c ChartsConfig) Options() charts.Options {
	return charts.Options{
		PageTitle:        c.PageTitle,
		Width:            c.Width,
		Height:           c.Height,
		Theme:            c.Theme,
		Currency:         c.Currency,
		IndexName:        c.IndexName,
		LabelRotation:    c.LabelRotation,
		MarkerSize:       c.MarkerSize,
		SVGTitle:         c.SVGTitle,
		SVGWidth:         c.SVGWidth,
		SVGHeight:        c.SVGHeight,
		TooltipScriptURL: c.TooltipScriptURL,
	}
}

// Default is the configuration used when no files are present.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name: "homefolio",
			Env:  "development",
			Port: 8080,
		},
		Scraping: ScrapingConfig{
			Engine:  EngineHTTP,
			Timeout: 30 * time.Second,
			Rules:   scraping.DefaultRules(),
		},
		Charts: ChartsConfig{
			Currency: charts.DefaultCurrency,
		},
	}
}

// LoadConfig reads app.yaml and scraping.yaml from dir, then applies
// overrides from .env and the process environment. Missing files are skipped.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	// Carrega arquivo YAML base
	if err := readYAML(filepath.Join(dir, "app.yaml"), cfg); err != nil {
		return nil, err
	}

	// Carrega configurações específicas de scraping
	if err := readYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Scraping.Engine {
	case EngineHTTP, EngineColly:
	default:
		return fmt.Errorf("config: unknown scraping engine %q", c.Scraping.Engine)
	}
	if c.Scraping.Timeout < 0 {
		return fmt.Errorf("config: negative scraping timeout")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.App.Port)
	}
	if err := scraping.ValidateRules(c.Scraping.Rules); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func readYAML(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: APP_PORT: %w", err)
		}
		cfg.App.Port = port
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: APP_DEBUG: %w", err)
		}
		cfg.App.Debug = debug
	}
	if v := os.Getenv("SCRAPER_ENGINE"); v != "" {
		cfg.Scraping.Engine = v
	}
	if v := os.Getenv("SCRAPER_USER_AGENT"); v != "" {
		cfg.Scraping.UserAgent = v
	}
	if v := os.Getenv("SCRAPER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SCRAPER_TIMEOUT: %w", err)
		}
		cfg.Scraping.Timeout = d
	}
	if v := os.Getenv("CHARTS_CURRENCY"); v != "" {
		cfg.Charts.Currency = v
	}
	return nil
}
