package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Bloom     BloomConfig     `mapstructure:"bloom"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
	Resolver  ResolverConfig  `mapstructure:"resolver"`
	Instagram InstagramConfig `mapstructure:"instagram"`
	Embed     EmbedConfig     `mapstructure:"embed"`
	Proxy     ProxyConfig     `mapstructure:"proxy"`
	Backfill  BackfillConfig  `mapstructure:"backfill"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// SQLConfig points at the storefront's product store. Driver is "postgres" or "mysql".
type SQLConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BloomConfig sizes the webhook media dedupe filter
type BloomConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// ResolverConfig controls the link resolution and metadata chains
type ResolverConfig struct {
	StrategyTimeout time.Duration `mapstructure:"strategy_timeout"`
	ChainDeadline   time.Duration `mapstructure:"chain_deadline"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
	UserAgent       string        `mapstructure:"user_agent"`
	ShortLinkHosts  []string      `mapstructure:"short_link_hosts"`
	// Relays lists relay names in the order the resolver tries them.
	Relays        []string `mapstructure:"relays"`
	AllOriginsURL string   `mapstructure:"allorigins_url"`
	CorsProxyURL  string   `mapstructure:"corsproxy_url"`
	TikWMURL      string   `mapstructure:"tikwm_url"`
	OEmbedURL     string   `mapstructure:"oembed_url"`
	// MetadataRelay carries the oEmbed request, BackupRelay the second structured API attempt.
	MetadataRelay     string `mapstructure:"metadata_relay"`
	BackupRelay       string `mapstructure:"backup_relay"`
	ThumbnailProxyURL string `mapstructure:"thumbnail_proxy_url"`
}

// InstagramConfig holds Graph API and webhook settings
type InstagramConfig struct {
	GraphURL     string `mapstructure:"graph_url"`
	GraphVersion string `mapstructure:"graph_version"`
	AccessToken  string `mapstructure:"access_token"`
	VerifyToken  string `mapstructure:"verify_token"`
}

// EmbedConfig represents embed player configuration
type EmbedConfig struct {
	SiteOrigin string `mapstructure:"site_origin"`
}

// ProxyConfig restricts the video proxy to known CDN hosts. HeaderTimeout
// bounds the wait for upstream headers only.
type ProxyConfig struct {
	AllowedHosts  []string      `mapstructure:"allowed_hosts"`
	HeaderTimeout time.Duration `mapstructure:"header_timeout"`
}

// BackfillConfig represents maintenance job configuration
type BackfillConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file. Variables from .env are loaded first
// without overriding the process environment.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.SQL.DSN = expandEnv(cfg.Database.SQL.DSN)
	cfg.Instagram.AccessToken = expandEnv(cfg.Instagram.AccessToken)
	cfg.Instagram.VerifyToken = expandEnv(cfg.Instagram.VerifyToken)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.sql.driver", "postgres")
	v.SetDefault("bloom.capacity", 1000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "reel_import")
	v.SetDefault("rocketmq.group", "reel_import_consumer_group")

	v.SetDefault("resolver.strategy_timeout", 8*time.Second)
	v.SetDefault("resolver.chain_deadline", 20*time.Second)
	v.SetDefault("resolver.http_timeout", 15*time.Second)
	v.SetDefault("resolver.user_agent", "Mozilla/5.0")
	v.SetDefault("resolver.short_link_hosts", []string{"vt.tiktok.com", "vm.tiktok.com", "t.tiktok.com", "v.tiktok.com"})
	v.SetDefault("resolver.relays", []string{"allorigins", "corsproxy"})
	v.SetDefault("resolver.allorigins_url", "https://api.allorigins.win")
	v.SetDefault("resolver.corsproxy_url", "https://corsproxy.io")
	v.SetDefault("resolver.tikwm_url", "https://www.tikwm.com")
	v.SetDefault("resolver.oembed_url", "https://www.tiktok.com/oembed")
	v.SetDefault("resolver.metadata_relay", "allorigins")
	v.SetDefault("resolver.backup_relay", "corsproxy")
	v.SetDefault("resolver.thumbnail_proxy_url", "https://images.weserv.nl")

	v.SetDefault("instagram.graph_url", "https://graph.facebook.com")
	v.SetDefault("instagram.graph_version", "v18.0")

	v.SetDefault("embed.site_origin", "http://localhost:5173")
	v.SetDefault("proxy.allowed_hosts", []string{"cdninstagram.com", "fbcdn.net", "tiktokcdn.com"})
	v.SetDefault("proxy.header_timeout", 15*time.Second)
	v.SetDefault("backfill.interval", 1500*time.Millisecond)
}

// expandEnv resolves a "${NAME}" value from the environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
