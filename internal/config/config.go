// config предоставляет структуру конфигурации планировщика и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
//
// Конфигурация собирается один раз при старте процесса и передаётся
// в конструкторы компонентов; глобального доступа к настройкам нет.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	DB         DBConfig         `yaml:"db"`
	Auth       AuthConfig       `yaml:"auth"`
	Microsoft  MicrosoftConfig  `yaml:"microsoft"`
	Push       PushConfig       `yaml:"push"`
	Dispatcher DispatcherConfig `yaml:"dispatcher"`
	Cleanup    CleanupConfig    `yaml:"cleanup"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки REST API.
type HTTPConfig struct {
	Host          string   `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port          string   `yaml:"port" env:"HTTP_PORT" env-default:"8000"`
	BasePath      string   `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:""`
	CORSOrigins   []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-separator:","`
	AuthRateLimit int      `yaml:"auth_rate_limit" env:"HTTP_AUTH_RATE_LIMIT" env-default:"20"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
	MaxConns    int32  `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
}

// AuthConfig содержит параметры выпуска и проверки токенов.
type AuthConfig struct {
	SecretKey       string        `yaml:"secret_key" env:"AUTH_SECRET_KEY" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"30m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer          string        `yaml:"issuer" env:"AUTH_ISSUER" env-default:"ab-planner"`
	DefaultRoleCode string        `yaml:"default_role_code" env:"DEFAULT_ROLE_CODE" env-default:"student"`
}

// MicrosoftConfig — параметры входа через Microsoft (OAuth2 code + PKCE).
type MicrosoftConfig struct {
	Tenant       string        `yaml:"tenant" env:"MS_TENANT" env-default:"common"`
	ClientID     string        `yaml:"client_id" env:"MS_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"MS_CLIENT_SECRET"`
	RedirectURI  string        `yaml:"redirect_uri" env:"MS_REDIRECT_URI"`
	Scope        string        `yaml:"scope" env:"MS_SCOPE" env-default:"openid profile email offline_access"`
	BaseURL      string        `yaml:"base_url" env:"MS_BASE_URL" env-default:"https://login.microsoftonline.com"`
	JWKSCache    time.Duration `yaml:"jwks_cache" env:"MS_JWKS_CACHE" env-default:"1h"`
	Timeout      time.Duration `yaml:"timeout" env:"MS_TIMEOUT" env-default:"10s"`
}

// PushConfig — учётные данные и адреса FCM.
// При заданном service account используется HTTP v1, иначе legacy по server key.
type PushConfig struct {
	ServerKey          string        `yaml:"server_key" env:"FCM_SERVER_KEY"`
	ServiceAccountJSON string        `yaml:"service_account_json" env:"FCM_SERVICE_ACCOUNT_JSON"`
	ServiceAccountFile string        `yaml:"service_account_file" env:"FCM_SERVICE_ACCOUNT_FILE"`
	ProjectID          string        `yaml:"project_id" env:"FCM_PROJECT_ID"`
	Timeout            time.Duration `yaml:"timeout" env:"FCM_TIMEOUT" env-default:"10s"`
	LegacyURL          string        `yaml:"legacy_url" env:"FCM_LEGACY_URL" env-default:"https://fcm.googleapis.com/fcm/send"`
	V1BaseURL          string        `yaml:"v1_base_url" env:"FCM_V1_BASE_URL" env-default:"https://fcm.googleapis.com"`
	TokenURL           string        `yaml:"token_url" env:"FCM_TOKEN_URL" env-default:"https://oauth2.googleapis.com/token"`
}

// DispatcherConfig — фоновая отправка уведомлений из outbox.
type DispatcherConfig struct {
	Enabled      bool          `yaml:"enabled" env:"DISPATCHER_ENABLED" env-default:"true"`
	Interval     time.Duration `yaml:"interval" env:"DISPATCHER_INTERVAL" env-default:"1m"`
	BatchSize    int           `yaml:"batch_size" env:"DISPATCHER_BATCH_SIZE" env-default:"50"`
	RetryFailed  bool          `yaml:"retry_failed" env:"DISPATCHER_RETRY_FAILED" env-default:"false"`
	MaxAttempts  int           `yaml:"max_attempts" env:"DISPATCHER_MAX_ATTEMPTS" env-default:"5"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"DISPATCHER_RETRY_BACKOFF" env-default:"5m"`
}

// CleanupConfig — периодическая очистка сессий и журнала изменений.
type CleanupConfig struct {
	Enabled         bool          `yaml:"enabled" env:"CLEANUP_ENABLED" env-default:"true"`
	Interval        time.Duration `yaml:"interval" env:"CLEANUP_INTERVAL" env-default:"24h"`
	SessionGrace    time.Duration `yaml:"session_grace" env:"CLEANUP_SESSION_GRACE" env-default:"168h"`
	ChangeLogMaxAge time.Duration `yaml:"change_log_max_age" env:"CLEANUP_CHANGE_LOG_MAX_AGE" env-default:"2160h"`
}

// TimeoutConfig — таймауты обработки.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"15s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validate отсекает значения, с которыми фоновые задачи не могут работать.
// Выключенные задачи не проверяются.
func (c *Config) validate() error {
	if c.Dispatcher.Enabled {
		switch {
		case c.Dispatcher.Interval <= 0:
			return fmt.Errorf("dispatcher.interval must be positive, got %s", c.Dispatcher.Interval)
		case c.Dispatcher.BatchSize <= 0:
			return fmt.Errorf("dispatcher.batch_size must be positive, got %d", c.Dispatcher.BatchSize)
		case c.Dispatcher.MaxAttempts <= 0:
			return fmt.Errorf("dispatcher.max_attempts must be positive, got %d", c.Dispatcher.MaxAttempts)
		}
	}

	if c.Cleanup.Enabled && c.Cleanup.Interval <= 0 {
		return fmt.Errorf("cleanup.interval must be positive, got %s", c.Cleanup.Interval)
	}

	return nil
}

func load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", p, err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	switch {
	case path != "":
		return readFile(path)
	case os.Getenv("CONFIG_PATH") != "":
		return readFile(os.Getenv("CONFIG_PATH"))
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return readFile("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
