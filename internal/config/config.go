package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Режимы интерфейса.
const (
	ModeTUI = "tui"
	ModeWeb = "web"
)

const defaultTUILogFile = "shortener-client.log"

// envFile файл с переменными окружения, читается если существует.
var envFile = ".env"

// Config хранит конфигурацию клиента
type Config struct {
	APIBaseURL    string `json:"api_base_url"`
	UIMode        string `json:"ui_mode"`
	ListenAddress string `json:"listen_address"`
	LogLevel      string `json:"log_level"`
	LogFile       string `json:"log_file"`
}

// NewConfig собирает конфигурацию. Приоритет по возрастанию:
// значения по умолчанию, .env, JSON-файл (-c/CONFIG), окружение, флаги.
func NewConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "http://localhost:8080") // адрес сервиса из исходного фронтенда
	v.SetDefault("ui_mode", ModeTUI)
	v.SetDefault("listen_address", "localhost:3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.AutomaticEnv()

	// .env не переопределяет переменные окружения
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	fs := flag.NewFlagSet("shortener-client", flag.ContinueOnError)
	baseURL := fs.String("b", "", "base URL of the shortening service")
	mode := fs.String("m", "", "UI mode: tui or web")
	listen := fs.String("a", "", "listen address for web mode")
	logLevel := fs.String("l", "", "log level")
	logFile := fs.String("o", "", "log file path")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", *configPath, err)
		}
		v.SetConfigType("json")
		if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", *configPath, err)
		}
	}

	cfg := &Config{
		APIBaseURL:    v.GetString("api_base_url"),
		UIMode:        v.GetString("ui_mode"),
		ListenAddress: v.GetString("listen_address"),
		LogLevel:      v.GetString("log_level"),
		LogFile:       v.GetString("log_file"),
	}

	// Флаги имеют наивысший приоритет
	override := func(flagValue string, target *string) {
		if flagValue != "" {
			*target = flagValue
		}
	}
	override(*baseURL, &cfg.APIBaseURL)
	override(*mode, &cfg.UIMode)
	override(*listen, &cfg.ListenAddress)
	override(*logLevel, &cfg.LogLevel)
	override(*logFile, &cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.APIBaseURL == "" {
		return errors.New("API base URL must not be empty")
	}
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API base URL %q is not an absolute URL", cfg.APIBaseURL)
	}
	switch cfg.UIMode {
	case ModeTUI:
	case ModeWeb:
		if cfg.ListenAddress == "" {
			return errors.New("listen address must not be empty in web mode")
		}
	default:
		return fmt.Errorf("unknown UI mode %q", cfg.UIMode)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// LogPath куда писать логи. В режиме tui терминал занят интерфейсом,
// поэтому по умолчанию используется файл; пустая строка означает stderr.
func (cfg *Config) LogPath() string {
	if cfg.LogFile == "" && cfg.UIMode == ModeTUI {
		return defaultTUILogFile
	}
	return cfg.LogFile
}
