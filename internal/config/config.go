package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	MarketplaceDB `yaml:"marketplace_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Maps          `yaml:"maps"`
	ViaCEP        `yaml:"viacep"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketplaceDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

type Maps struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type ViaCEP struct {
	BaseURL string `yaml:"base_url"`
}

func MustLoad() *MarketplaceConfig {
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
