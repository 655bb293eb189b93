package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"calnotes/internal/storage"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. CALNOTES_DATA_DIR.
const EnvPrefix = "CALNOTES"

// Config holds the unified application configuration
type Config struct {
	DataDir          string `mapstructure:"data_dir" yaml:"data_dir"`
	Storage          string `mapstructure:"storage" yaml:"storage"`
	DefaultView      string `mapstructure:"default_view" yaml:"default_view"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level"`
	StrictMutations  bool   `mapstructure:"strict_mutations" yaml:"strict_mutations"`
	MinuteStep       int    `mapstructure:"minute_step" yaml:"minute_step"`
	ReminderSchedule string `mapstructure:"reminder_schedule" yaml:"reminder_schedule"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir string
	Storage string
	View    string
}

// Views lists the accepted default_view values.
var Views = []string{"month", "week", "day", "list"}

func setDefaults(v *viper.Viper) error {
	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}
	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("storage", string(storage.KindFile))
	v.SetDefault("default_view", "month")
	v.SetDefault("log_level", "info")
	v.SetDefault("strict_mutations", true)
	v.SetDefault("minute_step", 5)
	v.SetDefault("reminder_schedule", "@every 1m")
	return nil
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return load(configPath, flags)
}

func load(configPath string, flags CLIFlags) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	// A missing config file is fine; a broken one is not
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Storage != "" {
		cfg.Storage = flags.Storage
	}
	if flags.View != "" {
		cfg.DefaultView = flags.View
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	cfg.DefaultView = strings.ToLower(strings.TrimSpace(cfg.DefaultView))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field holds a usable value
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir cannot be empty")
	}
	if _, err := storage.ParseKind(c.Storage); err != nil {
		return err
	}
	if !contains(Views, c.DefaultView) {
		return fmt.Errorf("default_view must be one of %s", strings.Join(Views, ", "))
	}
	if c.MinuteStep < 1 || c.MinuteStep > 30 || 60%c.MinuteStep != 0 {
		return errors.New("minute_step must divide 60 and be between 1 and 30")
	}
	if strings.TrimSpace(c.ReminderSchedule) == "" {
		return errors.New("reminder_schedule cannot be empty")
	}
	return nil
}

// StorageKind returns the parsed storage backend.
func (c Config) StorageKind() storage.Kind {
	k, _ := storage.ParseKind(c.Storage)
	return k
}

// EnsureDataDir creates the data directory if missing
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// GetDefaultDir returns the default directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "calnotes"), nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "calnotes", "config.yaml"), nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return ensureConfigFile(configPath)
}

func ensureConfigFile(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	v := viper.New()
	if err := setDefaults(v); err != nil {
		return err
	}
	var defaults Config
	if err := v.Unmarshal(&defaults); err != nil {
		return err
	}

	data, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
