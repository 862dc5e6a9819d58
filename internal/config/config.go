package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	CRM    CRMConfig    `yaml:"crm"`
	Rules  RulesConfig  `yaml:"rules"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置（host 为空时不启用工单查询缓存）
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CRMConfig 工单来源（CRM）配置
type CRMConfig struct {
	Backend         string `yaml:"backend"` // mock, http
	BaseURL         string `yaml:"baseUrl"`
	TimeoutSeconds  int    `yaml:"timeoutSeconds"`
	CacheTTLMinutes int    `yaml:"cacheTtlMinutes"`
}

// RulesConfig 规则表配置（path 为空时使用内置规则表）
type RulesConfig struct {
	Path string `yaml:"path"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 默认值
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8000
	}
	if cfg.CRM.Backend == "" {
		cfg.CRM.Backend = "mock"
	}
	if cfg.CRM.TimeoutSeconds <= 0 {
		cfg.CRM.TimeoutSeconds = 10
	}
	if cfg.CRM.CacheTTLMinutes <= 0 {
		cfg.CRM.CacheTTLMinutes = 30
	}

	return &cfg, nil
}
