package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

/* Config is read once at startup and never mutated afterwards
 * Precedence: environment (RELEASE_NOTIFY_*) > config file > defaults
 */

const (
	// DefaultHookTokenRef names the environment variable holding the webhook URL.
	DefaultHookTokenRef = "SLACK_WEBHOOK_URL"
	// DefaultSuccessMessage is sent after a successful release unless overridden.
	DefaultSuccessMessage = "New version has been released"
	DefaultTimeout        = 5 * time.Second
	DefaultConfigName     = ".release-notify"
	EnvPrefix             = "RELEASE_NOTIFY"
)

type Config struct {
	// WebhookURL is used verbatim when set, even if empty
	WebhookURL      *string       `mapstructure:"webhook_url"`
	ConvertMarkdown bool          `mapstructure:"convert_markdown"`
	HookTokenRef    string        `mapstructure:"hook_token_ref"`
	SuccessMessage  any           `mapstructure:"success_message"`
	ErrorMessage    any           `mapstructure:"error_message"`
	Timeout         time.Duration `mapstructure:"timeout"`
	LogLevel        string        `mapstructure:"log_level"`
	Port            string        `mapstructure:"port"`
	History         HistoryConfig `mapstructure:"history"`
	Metrics         MetricsConfig `mapstructure:"metrics"`
}

// HistoryConfig enables the Redis delivery history when RedisAddr is set
type HistoryConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// MetricsConfig enables pushing delivery metrics when PushgatewayURL is set
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	Job            string `mapstructure:"job"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		HookTokenRef:   DefaultHookTokenRef,
		SuccessMessage: DefaultSuccessMessage,
		Timeout:        DefaultTimeout,
		LogLevel:       "info",
		Port:           "8080",
		Metrics: MetricsConfig{
			Job: "release_notify",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("convert_markdown", d.ConvertMarkdown)
	v.SetDefault("hook_token_ref", d.HookTokenRef)
	v.SetDefault("success_message", d.SuccessMessage)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("port", d.Port)
	v.SetDefault("history.redis_addr", "")
	v.SetDefault("history.redis_password", "")
	v.SetDefault("history.redis_db", 0)
	v.SetDefault("history.ttl", time.Duration(0))
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", d.Metrics.Job)
}

// Load reads the configuration. An empty path searches the working directory
// for .release-notify.{yaml,yml,json,toml}; a missing file then means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys without a default are only seen by AutomaticEnv when bound
	for _, key := range []string{"webhook_url", "error_message"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := restoreMessageKeys(&cfg, v.ConfigFileUsed()); err != nil {
		return nil, fmt.Errorf("reading messages from %s: %w", v.ConfigFileUsed(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// restoreMessageKeys re-reads object messages from the config file.
// viper lowercases map keys, but payload keys are sent verbatim.
// Messages that are not objects after merging (e.g. set from the environment) are left alone.
func restoreMessageKeys(cfg *Config, file string) error {
	if file == "" {
		return nil
	}
	if !isObject(cfg.SuccessMessage) && !isObject(cfg.ErrorMessage) {
		return nil
	}

	data, err := afero.ReadFile(afero.NewOsFs(), file)
	if err != nil {
		return err
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	if m, ok := lookupObject(raw, "success_message"); ok && isObject(cfg.SuccessMessage) {
		cfg.SuccessMessage = m
	}
	if m, ok := lookupObject(raw, "error_message"); ok && isObject(cfg.ErrorMessage) {
		cfg.ErrorMessage = m
	}
	return nil
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// lookupObject finds a top-level key case-insensitively, as viper does
func lookupObject(raw map[string]any, key string) (map[string]any, bool) {
	for k, v := range raw {
		if strings.EqualFold(k, key) {
			m, ok := v.(map[string]any)
			return m, ok
		}
	}
	return nil, false
}

// Validate checks the configuration and fills in fallbacks
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HookTokenRef) == "" {
		c.HookTokenRef = DefaultHookTokenRef
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %s)", c.Timeout)
	}
	if c.WebhookURL != nil && *c.WebhookURL != "" {
		u, err := url.Parse(*c.WebhookURL)
		if err != nil {
			return fmt.Errorf("invalid webhook_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("webhook_url must use http or https (got %q)", u.Scheme)
		}
	}
	if c.History.RedisDB < 0 {
		return fmt.Errorf("history.redis_db cannot be negative")
	}
	if c.History.TTL < 0 {
		return fmt.Errorf("history.ttl cannot be negative")
	}
	return nil
}

// ResolveWebhookURL returns the literal webhook_url when set, otherwise the
// value of the environment variable named by HookTokenRef.
func (c *Config) ResolveWebhookURL(lookup func(string) (string, bool)) (string, bool) {
	if c.WebhookURL != nil {
		return *c.WebhookURL, true
	}
	ref := c.HookTokenRef
	if strings.TrimSpace(ref) == "" {
		ref = DefaultHookTokenRef
	}
	if lookup == nil {
		return "", false
	}
	return lookup(ref)
}

// HistoryEnabled reports whether deliveries should be recorded
func (c *Config) HistoryEnabled() bool {
	return strings.TrimSpace(c.History.RedisAddr) != ""
}
