package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ICI-Laboratories/lmServer/helpers"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// minSweepInterval is the eviction cadence floor. A tiny heartbeat TTL must
// not make the sweeper spin.
const minSweepInterval = time.Second

// Config is the full lmserver configuration. The balancer and node sections
// feed their respective subcommands; logging and metrics apply to both.
type Config struct {
	Balancer BalancerConfig `mapstructure:"balancer"`
	Node     NodeConfig     `mapstructure:"node"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// BalancerConfig drives the balancer subcommand. Durations are millisecond
// counts, matching the *_ms key names.
type BalancerConfig struct {
	ListenAddr       string `mapstructure:"listen_addr"`
	UDPAddr          string `mapstructure:"udp_addr"`
	HeartbeatTTLMs   int    `mapstructure:"heartbeat_ttl_ms"`
	SweepIntervalMs  int    `mapstructure:"sweep_interval_ms"`
	ForwardTimeoutMs int    `mapstructure:"forward_timeout_ms"`
	ConnectTimeoutMs int    `mapstructure:"connect_timeout_ms"`
	RetryBudget      int    `mapstructure:"retry_budget"`
}

// HeartbeatTTL returns how long a node stays live after its last announcement.
func (c BalancerConfig) HeartbeatTTL() time.Duration {
	return time.Duration(c.HeartbeatTTLMs) * time.Millisecond
}

// SweepInterval returns the eviction cadence: the configured value, or half
// the heartbeat TTL when unset, floored at minSweepInterval.
func (c BalancerConfig) SweepInterval() time.Duration {
	interval := time.Duration(c.SweepIntervalMs) * time.Millisecond
	if c.SweepIntervalMs == 0 {
		interval = c.HeartbeatTTL() / 2
	}
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	return interval
}

// ForwardTimeout returns the per-attempt deadline for one upstream forward.
func (c BalancerConfig) ForwardTimeout() time.Duration {
	return time.Duration(c.ForwardTimeoutMs) * time.Millisecond
}

// ConnectTimeout returns the dial timeout for upstream connections.
func (c BalancerConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMs) * time.Millisecond
}

// NodeConfig drives the node subcommand.
type NodeConfig struct {
	BalancerHost       string  `mapstructure:"balancer_host"`
	BalancerPort       int     `mapstructure:"balancer_port"`
	AnnounceIntervalMs int     `mapstructure:"announce_interval_ms"`
	LMStudioEndpoint   string  `mapstructure:"lmstudio_endpoint"`
	OllamaEndpoint     string  `mapstructure:"ollama_endpoint"`
	LoadHint           float64 `mapstructure:"load_hint"`
}

// AnnounceInterval returns the time between announcements.
func (c NodeConfig) AnnounceInterval() time.Duration {
	return time.Duration(c.AnnounceIntervalMs) * time.Millisecond
}

// BalancerTarget returns the host:port announcements are sent to.
func (c NodeConfig) BalancerTarget() string {
	return net.JoinHostPort(c.BalancerHost, strconv.Itoa(c.BalancerPort))
}

// LoadHintValue returns the static load hint to report, or nil when load
// reporting is disabled (any negative value).
func (c NodeConfig) LoadHintValue() *float64 {
	if c.LoadHint < 0 {
		return nil
	}
	return helpers.Ptr(c.LoadHint)
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// flagKeys maps command-line flag names onto config keys. Bound flags
// override both the file and the environment.
var flagKeys = map[string]string{
	"listen-addr":       "balancer.listen_addr",
	"udp-addr":          "balancer.udp_addr",
	"balancer-host":     "node.balancer_host",
	"balancer-port":     "node.balancer_port",
	"lmstudio-endpoint": "node.lmstudio_endpoint",
	"ollama-endpoint":   "node.ollama_endpoint",
	"load-hint":         "node.load_hint",
	"log-level":         "logging.level",
}

// LoadConfig builds the configuration from, weakest first: defaults, the YAML
// file, LMSERVER_* environment variables, and any bound command-line flags.
// An explicitly named config file must exist; the default search locations
// are optional.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("lmserver")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/lmserver")
	}

	setDefaults(v)

	v.SetEnvPrefix("LMSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values. The addresses, intervals and
// timeouts follow the original deployment: HTTP on :8080, announcements on
// :4000 every 10s, a 60s forward deadline with a 10s dial timeout.
func setDefaults(v *viper.Viper) {
	// Balancer defaults
	v.SetDefault("balancer.listen_addr", "0.0.0.0:8080")
	v.SetDefault("balancer.udp_addr", "0.0.0.0:4000")
	v.SetDefault("balancer.heartbeat_ttl_ms", 30000)
	v.SetDefault("balancer.sweep_interval_ms", 0)
	v.SetDefault("balancer.forward_timeout_ms", 60000)
	v.SetDefault("balancer.connect_timeout_ms", 10000)
	v.SetDefault("balancer.retry_budget", 2)

	// Node defaults
	v.SetDefault("node.balancer_host", "")
	v.SetDefault("node.balancer_port", 4000)
	v.SetDefault("node.announce_interval_ms", 10000)
	v.SetDefault("node.lmstudio_endpoint", "")
	v.SetDefault("node.ollama_endpoint", "")
	v.SetDefault("node.load_hint", -1.0)

	// Logging defaults
	v.SetDefault("logging.level", "info")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
}

// bindFlags binds every flag with a known config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// ValidateBalancer checks the sections the balancer subcommand consumes.
func (c *Config) ValidateBalancer() error {
	if err := validateListenAddr("balancer.listen_addr", c.Balancer.ListenAddr); err != nil {
		return err
	}
	if err := validateListenAddr("balancer.udp_addr", c.Balancer.UDPAddr); err != nil {
		return err
	}
	if c.Balancer.HeartbeatTTLMs <= 0 {
		return fmt.Errorf("balancer.heartbeat_ttl_ms must be positive, got %d", c.Balancer.HeartbeatTTLMs)
	}
	if c.Balancer.SweepIntervalMs < 0 {
		return fmt.Errorf("balancer.sweep_interval_ms must not be negative, got %d", c.Balancer.SweepIntervalMs)
	}
	if c.Balancer.ForwardTimeoutMs <= 0 {
		return fmt.Errorf("balancer.forward_timeout_ms must be positive, got %d", c.Balancer.ForwardTimeoutMs)
	}
	if c.Balancer.ConnectTimeoutMs <= 0 {
		return fmt.Errorf("balancer.connect_timeout_ms must be positive, got %d", c.Balancer.ConnectTimeoutMs)
	}
	if c.Balancer.RetryBudget < 0 {
		return fmt.Errorf("balancer.retry_budget must not be negative, got %d", c.Balancer.RetryBudget)
	}
	return c.validateLogging()
}

// ValidateNode checks the sections the node subcommand consumes.
func (c *Config) ValidateNode() error {
	if c.Node.BalancerHost == "" {
		return fmt.Errorf("node.balancer_host is required")
	}
	if c.Node.BalancerPort < 1 || c.Node.BalancerPort > 65535 {
		return fmt.Errorf("node.balancer_port must be 1-65535, got %d", c.Node.BalancerPort)
	}
	if c.Node.AnnounceIntervalMs <= 0 {
		return fmt.Errorf("node.announce_interval_ms must be positive, got %d", c.Node.AnnounceIntervalMs)
	}
	if c.Node.LMStudioEndpoint == "" && c.Node.OllamaEndpoint == "" {
		return fmt.Errorf("at least one of node.lmstudio_endpoint and node.ollama_endpoint is required")
	}
	if c.Node.LMStudioEndpoint != "" {
		if err := validateHostPort("node.lmstudio_endpoint", c.Node.LMStudioEndpoint); err != nil {
			return err
		}
	}
	if c.Node.OllamaEndpoint != "" {
		if err := validateHostPort("node.ollama_endpoint", c.Node.OllamaEndpoint); err != nil {
			return err
		}
	}
	return c.validateLogging()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug|info|warn|error, got %q", c.Logging.Level)
	}
}

func validateHostPort(key, value string) error {
	host, port, err := net.SplitHostPort(value)
	if err != nil || host == "" || port == "" {
		return fmt.Errorf("%s must be host:port, got %q", key, value)
	}
	return nil
}

// validateListenAddr accepts bind addresses with an empty host, such as ":8080".
func validateListenAddr(key, value string) error {
	_, port, err := net.SplitHostPort(value)
	if err != nil || port == "" {
		return fmt.Errorf("%s must be [host]:port, got %q", key, value)
	}
	return nil
}
