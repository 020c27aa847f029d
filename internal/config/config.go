package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Имена входных параметров action. Раннер GitHub передаёт их как INPUT_<NAME>.
const (
	InputClientToken  = "CLIENT_TOKEN"
	InputClientSecret = "CLIENT_SECRET"
	InputAccessToken  = "ACCESS_TOKEN"
	InputHost         = "HOST"
	InputURLs         = "URLS"
	InputURLsFile     = "URLS_FILE"
	InputTimeout      = "TIMEOUT"
	InputLogLevel     = "LOG_LEVEL"
)

const defaultTimeout = 30 * time.Second

// ErrConfig возвращается, если конфигурация неполная или не читается.
var ErrConfig = errors.New("invalid configuration")

// ConfigError перечисляет обязательные параметры, которые не заданы.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "required input is missing: " + strings.Join(e.Missing, ", ")
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// Secret хранит учётные данные EdgeGrid. При любом выводе (fmt, JSON, zap.Stringer)
// значение скрыто, исходная строка доступна только через Reveal.
type Secret string

const redacted = "[REDACTED]"

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return redacted }

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Reveal возвращает исходное значение. Вызывать только при подписи запроса.
func (s Secret) Reveal() string { return string(s) }

// Config хранит параметры одного запуска. После NewConfig не изменяется.
type Config struct {
	ClientToken  Secret
	ClientSecret Secret
	AccessToken  Secret
	Host         string
	URLs         string
	URLsFile     string
	Timeout      time.Duration
	LogLevel     string
}

// NewConfig собирает конфигурацию из входов action, переменных окружения,
// файла .env и флагов командной строки. Флаги имеют наивысший приоритет.
// Учётные данные флагами не принимаются.
func NewConfig(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault(InputTimeout, defaultTimeout.String())
	v.SetDefault(InputLogLevel, "info")

	// INPUT_* приоритетнее обычных переменных окружения
	for _, key := range []string{
		InputClientToken, InputClientSecret, InputAccessToken, InputHost,
		InputURLs, InputURLsFile, InputTimeout, InputLogLevel,
	} {
		if err := v.BindEnv(key, "INPUT_"+key, key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	// .env для локального запуска, переменные окружения он не перекрывает
	v.SetConfigFile(".env")
	_ = v.ReadInConfig()

	fs := flag.NewFlagSet("akamai-purge", flag.ContinueOnError)
	host := fs.String("host", "", "Akamai API host, e.g. akab-xxxx.luna.akamaiapis.net")
	urls := fs.String("urls", "", "newline separated list of URLs to purge")
	urlsFile := fs.String("f", "", "file with URLs to purge, one per line")
	timeout := fs.Duration("timeout", 0, "timeout of the purge request")
	logLevel := fs.String("log-level", "", "debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := &Config{
		ClientToken:  Secret(v.GetString(InputClientToken)),
		ClientSecret: Secret(v.GetString(InputClientSecret)),
		AccessToken:  Secret(v.GetString(InputAccessToken)),
		Host:         v.GetString(InputHost),
		URLs:         v.GetString(InputURLs),
		URLsFile:     v.GetString(InputURLsFile),
		LogLevel:     v.GetString(InputLogLevel),
	}

	if raw := strings.TrimSpace(v.GetString(InputTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s %q: %w", ErrConfig, InputTimeout, raw, err)
		}
		cfg.Timeout = d
	}

	override := func(val string, target *string) {
		if val != "" {
			*target = val
		}
	}
	override(*host, &cfg.Host)
	override(*urls, &cfg.URLs)
	override(*urlsFile, &cfg.URLsFile)
	override(*logLevel, &cfg.LogLevel)
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if strings.TrimSpace(cfg.URLs) == "" && cfg.URLsFile != "" {
		data, err := os.ReadFile(cfg.URLsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: read urls file %q: %w", ErrConfig, cfg.URLsFile, err)
		}
		cfg.URLs = string(data)
	}

	return cfg, nil
}

// Validate проверяет, что все обязательные параметры заданы.
// Выполняется до разбора списка URL и до любого сетевого вызова.
func (cfg *Config) Validate() error {
	var missing []string
	check := func(name, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}
	check(InputClientToken, cfg.ClientToken.Reveal())
	check(InputClientSecret, cfg.ClientSecret.Reveal())
	check(InputAccessToken, cfg.AccessToken.Reveal())
	check(InputHost, cfg.Host)
	check(InputURLs, cfg.URLs)

	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Mask передаёт непустые учётные данные в mask, например для маскирования
// значений в логах раннера.
func (cfg *Config) Mask(mask func(string)) {
	for _, s := range []Secret{cfg.ClientToken, cfg.ClientSecret, cfg.AccessToken} {
		if s != "" {
			mask(s.Reveal())
		}
	}
}

// Fields описывает конфигурацию для логирования. Секреты выводятся скрытыми.
func (cfg *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("client_token", cfg.ClientToken),
		zap.Stringer("client_secret", cfg.ClientSecret),
		zap.Stringer("access_token", cfg.AccessToken),
		zap.String("host", cfg.Host),
		zap.String("urls_file", cfg.URLsFile),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("log_level", cfg.LogLevel),
	}
}
