package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

// Config настройки терминала, загружаемые из TOML файла.
// Отсутствующий файл не ошибка: терминал стартует с настройками по
// умолчанию, флаги командной строки переопределяют значения файла.
type Config struct {
	// ServerURL адрес сервера синхронизации
	ServerURL string `toml:"server_url"`
	// DBPath путь к локальной базе bbolt
	DBPath string `toml:"db_path"`
	// SyncIntervalSec период фоновой синхронизации в секундах
	SyncIntervalSec int `toml:"sync_interval_sec"`
	// ProbeIntervalSec период опроса health endpoint в секундах
	ProbeIntervalSec int `toml:"probe_interval_sec"`
	// PageLimit размер страницы pull-запроса
	PageLimit int `toml:"page_limit"`
	// MaxAttempts предел попыток отправки одной записи outbox
	MaxAttempts int `toml:"max_attempts"`
	// BackoffCapSec потолок экспоненциальной задержки повторов в секундах
	BackoffCapSec int `toml:"backoff_cap_sec"`
	// DefaultPolicy политика конкурентных изменений: пустая строка -
	// ручное разрешение, "remote_wins" - автоматический выбор серверной
	// стороны
	DefaultPolicy string `toml:"default_policy"`
	// LogLevel уровень логирования: debug | info | warn | error
	LogLevel string `toml:"log_level"`
}

// Default возвращает настройки по умолчанию
func Default() *Config {
	return &Config{
		ServerURL:        "http://localhost:8080",
		DBPath:           "kassasync.db",
		SyncIntervalSec:  30,
		ProbeIntervalSec: 15,
		PageLimit:        100,
		MaxAttempts:      5,
		BackoffCapSec:    64,
		LogLevel:         "info",
	}
}

// Load читает настройки из TOML файла поверх значений по умолчанию.
// Пустой путь или отсутствующий файл дает настройки по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if err := tree.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.SyncIntervalSec <= 0 {
		return fmt.Errorf("sync_interval_sec must be positive")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive")
	}

	switch c.DefaultPolicy {
	case "", "remote_wins":
	default:
		return fmt.Errorf("unknown default_policy: %q", c.DefaultPolicy)
	}

	return nil
}

// SyncInterval период фоновой синхронизации
func (c *Config) SyncInterval() time.Duration {
	return time.Duration(c.SyncIntervalSec) * time.Second
}

// ProbeInterval период опроса health endpoint
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.ProbeIntervalSec) * time.Second
}

// BackoffCap потолок экспоненциальной задержки повторов
func (c *Config) BackoffCap() time.Duration {
	return time.Duration(c.BackoffCapSec) * time.Second
}

// RemoteWins сообщает, включено ли автоматическое разрешение конфликтов
// в пользу серверной стороны.
func (c *Config) RemoteWins() bool {
	return c.DefaultPolicy == "remote_wins"
}
