package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Vaflel/student-roster/infrastructure"
)

// Форматы файла со списком
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix префикс переменных окружения, например ROSTER_DATA_FILE
const EnvPrefix = "ROSTER"

// Config содержит настройки приложения
type Config struct {
	// DataFile файл, в который пункт меню "сохранить" пишет список
	DataFile string `yaml:"data_file" mapstructure:"data_file"`

	// Format формат DataFile: json или yaml
	Format string `yaml:"format" mapstructure:"format"`

	// LogLevel один из debug, info, warn, error
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// NoColor отключает цвет в логах
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() *Config {
	return &Config{
		DataFile: infrastructure.DefaultRosterPath(),
		Format:   FormatJSON,
		LogLevel: "warn",
		NoColor:  false,
	}
}

func configDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "student-roster"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "student-roster"))
	}
	return dirs
}

// Load читает config.yaml (или файл path, если он задан) и переменные окружения ROSTER_*
// поверх значений по умолчанию. Отсутствие config.yaml ошибкой не считается.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	// без значений по умолчанию AutomaticEnv не увидит ключи при Unmarshal
	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("no_color", cfg.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("config: не указан data_file")
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: неизвестный format %q (допустимы json и yaml)", c.Format)
	}

	// data_file не задан явно: yaml пишется в users.yaml, а не в users.json
	if c.Format == FormatYAML && c.DataFile == infrastructure.DefaultRosterPath() {
		c.DataFile = infrastructure.DefaultYAMLRosterPath()
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level возвращает уровень slog для LogLevel
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel разбирает debug, info, warn (warning) или error
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: неизвестный log_level %q", s)
}
