package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the task API base, including the /api prefix
	DefaultAPIURL = "http://127.0.0.1:8000/api"
	// DefaultWebURL is where the web pages (edit, create, register) live
	DefaultWebURL = "http://127.0.0.1:5173"
)

// Environment variables read by Load
const (
	EnvAPIURL    = "QUADRO_API_URL"
	EnvWebURL    = "QUADRO_WEB_URL"
	EnvThemeFile = "QUADRO_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	APIURL         string        `yaml:"api_url"`
	WebURL         string        `yaml:"web_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	KeyMappings    KeyMappings   `yaml:"key_mappings"`
	ColorScheme    ColorScheme   `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		WebURL:      DefaultWebURL,
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// loadDotEnv loads .env from the working directory; real env vars win
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}
}

// loadThemeFile loads and merges theme from QUADRO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv overrides the endpoints from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvWebURL); v != "" {
		c.WebURL = v
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
// Precedence: defaults < config file < environment (.env included).
func Load() (*Config, error) {
	loadDotEnv()

	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func readConfigFile() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	return &config, nil
}

// Override replaces the endpoints with non-empty command line values
func (c *Config) Override(apiURL, webURL string) error {
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if webURL != "" {
		c.WebURL = webURL
	}
	return c.Validate()
}

// Validate checks the endpoints are absolute http(s) URLs
func (c *Config) Validate() error {
	if !isHTTPURL(c.APIURL) {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	if !isHTTPURL(c.WebURL) {
		return fmt.Errorf("%w: %q", ErrInvalidWebURL, c.WebURL)
	}
	if c.RequestTimeout < 0 {
		return ErrNegativeTimeout
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quadro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quadro", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.WebURL == "" {
		c.WebURL = DefaultWebURL
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
