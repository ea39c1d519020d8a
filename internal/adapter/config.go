package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds card catalog API configuration
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Key      string `mapstructure:"key"` // optional API key for higher rate limits
	PageSize int    `mapstructure:"page_size"`
}

// CacheConfig holds local cache configuration
type CacheConfig struct {
	Dir    string `mapstructure:"dir"`
	Images bool   `mapstructure:"images"` // prefetch card images into the cache
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "https://api.pokemontcg.io",
			PageSize: 10,
		},
		Cache: CacheConfig{
			Dir:    defaultCachePath(),
			Images: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "carddex", "carddex.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "carddex", "carddex.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "carddex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "carddex")
	}
}

// defaultCachePath returns the default cache directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "carddex", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "carddex", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("CARDDEX")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure snake_case key names
	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.key", cfg.API.Key)
	viper.Set("api.page_size", cfg.API.PageSize)
	viper.Set("cache.dir", cfg.Cache.Dir)
	viper.Set("cache.images", cfg.Cache.Images)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ImageCachePath returns the directory used for prefetched card images
func (c *Config) ImageCachePath() string {
	return filepath.Join(c.Cache.Dir, "images")
}

// ClearCache removes all cached data (catalog, user profile, images)
func ClearCache(cfg *Config) error {
	if err := os.RemoveAll(cfg.Cache.Dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
