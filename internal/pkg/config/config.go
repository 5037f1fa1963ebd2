package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Token              string `yaml:"-"`
	ChatID             int64  `yaml:"chat_id"`
	OutputDir          string `yaml:"output_dir"`
	GroupWindowSeconds int    `yaml:"group_window_seconds"`
	MessagesBefore     int    `yaml:"messages_before"`
	MessagesAfter      int    `yaml:"messages_after"`
	MessageBufferSize  int    `yaml:"message_buffer_size"`
}

func defaults() *Config {
	return &Config{
		OutputDir:          "output",
		GroupWindowSeconds: 60,
		MessagesBefore:     5,
		MessagesAfter:      5,
		MessageBufferSize:  100,
	}
}

// Load собирает конфигурацию: значения по умолчанию,
// затем config.yaml (если есть), затем переменные окружения.
// Токен принимается только из окружения.
func Load() (*Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.Token = os.Getenv("TELEGRAM_TOKEN")

	if v := os.Getenv("CHAT_TO_MONITOR"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CHAT_TO_MONITOR must be a numeric chat id: %w", err)
		}
		cfg.ChatID = id
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("GROUP_TIME_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("GROUP_TIME_WINDOW must be seconds: %w", err)
		}
		cfg.GroupWindowSeconds = n
	}
	if v := os.Getenv("MESSAGES_BEFORE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MESSAGES_BEFORE must be a number: %w", err)
		}
		cfg.MessagesBefore = n
	}
	if v := os.Getenv("MESSAGES_AFTER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MESSAGES_AFTER must be a number: %w", err)
		}
		cfg.MessagesAfter = n
	}
	if v := os.Getenv("MESSAGE_BUFFER_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MESSAGE_BUFFER_SIZE must be a number: %w", err)
		}
		cfg.MessageBufferSize = n
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("CHAT_TO_MONITOR is not set")
	}

	return cfg, nil
}

func (c *Config) GroupWindow() time.Duration {
	return time.Duration(c.GroupWindowSeconds) * time.Second
}
