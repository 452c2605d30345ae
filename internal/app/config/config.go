// Package config はサービス全体の設定を提供します。
// YAMLファイルを読み込んだ後、環境変数で上書きします。
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	ListenAddr  string `yaml:"listen_addr" env:"LISTEN_ADDR"`
	CatalogPath string `yaml:"catalog_path" env:"CATALOG_PATH"`
	ExportDir   string `yaml:"export_dir" env:"EXPORT_DIR"`

	Redis RedisConfig `yaml:"redis" envPrefix:"REDIS_"`
	Cache CacheConfig `yaml:"cache" envPrefix:"CACHE_"`
}

// RedisConfig はメモ化キャッシュ用Redisの接続設定です。
// Hostが空の場合、サービスはキャッシュなしで動作します。
type RedisConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     string `yaml:"port" env:"PORT"`
	Password string `yaml:"password" env:"PASSWORD"`
}

// CacheConfig はフェッチ結果メモ化の設定です。
type CacheConfig struct {
	Namespace          string `yaml:"namespace" env:"NAMESPACE"`
	IntradayTTLSeconds int    `yaml:"intraday_ttl_seconds" env:"INTRADAY_TTL_SECONDS"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// ファイルが存在しない場合はデフォルト値のみで構成します。
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "exports"
	}
	if cfg.Cache.Namespace == "" {
		cfg.Cache.Namespace = "series"
	}
	if cfg.Cache.IntradayTTLSeconds <= 0 {
		cfg.Cache.IntradayTTLSeconds = 300
	}

	return cfg, nil
}

// RedisAddr は "host:port" 形式のアドレスを返します。
// Redisが未設定の場合は空文字列を返します。
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	port := c.Redis.Port
	if port == "" {
		port = "6379"
	}
	return c.Redis.Host + ":" + port
}

// IntradayTTL はイントラデイ系列のキャッシュTTLを返します。
func (c *CacheConfig) IntradayTTL() time.Duration {
	return time.Duration(c.IntradayTTLSeconds) * time.Second
}
