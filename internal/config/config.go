// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultMusicDir         = "~/Music"
	DefaultProgressInterval = time.Second
	DefaultInputInterval    = 100 * time.Millisecond
)

// DefaultExtensions расширения файлов, которые попадают в плейлист
var DefaultExtensions = []string{".mp3", ".wav"}

// Config структура для хранения конфигурации приложения
type Config struct {
	MusicDir         string        `yaml:"music_dir"`
	Extensions       []string      `yaml:"extensions"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	InputInterval    time.Duration `yaml:"input_interval"`
	UseTags          bool          `yaml:"use_tags"`
	LogFile          string        `yaml:"log_file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.ProgressInterval <= 0 {
		return fmt.Errorf("progress_interval должен быть положительным: %v", c.ProgressInterval)
	}
	if c.InputInterval <= 0 {
		return fmt.Errorf("input_interval должен быть положительным: %v", c.InputInterval)
	}
	return nil
}

// applyDefaults устанавливает значения по умолчанию, если они не заданы
func (c *Config) applyDefaults() {
	if c.MusicDir == "" {
		c.MusicDir = DefaultMusicDir
	}
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	if c.ProgressInterval == 0 {
		c.ProgressInterval = DefaultProgressInterval
	}
	if c.InputInterval == 0 {
		c.InputInterval = DefaultInputInterval
	}

	// Раскрываем тильду в путях
	if dir, err := ExpandHome(c.MusicDir); err == nil {
		c.MusicDir = dir
	}
	if c.LogFile != "" {
		if logFile, err := ExpandHome(c.LogFile); err == nil {
			c.LogFile = logFile
		}
	}
}

// ExpandHome заменяет ведущую тильду домашней папкой пользователя
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
