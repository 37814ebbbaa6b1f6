package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http" envPrefix:"HTTP_"`
	GRPC       GRPCConfig       `yaml:"grpc" envPrefix:"GRPC_"`
	Redis      RedisConfig      `yaml:"redis" envPrefix:"REDIS_"`
	Kafka      KafkaConfig      `yaml:"kafka" envPrefix:"KAFKA_"`
	Validation ValidationConfig `yaml:"validation" envPrefix:"VALIDATION_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"ADDRESS"`
	// Swagger toggles the swagger UI at /swagger/.
	Swagger bool `yaml:"swagger" env:"SWAGGER"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"ADDRESS"`
}

// RedisConfig enables the decision cache when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers        []string `yaml:"brokers" env:"BROKERS" envSeparator:","`
	RequestsTopic  string   `yaml:"requests_topic" env:"REQUESTS_TOPIC"`
	DecisionsTopic string   `yaml:"decisions_topic" env:"DECISIONS_TOPIC"`
	GroupID        string   `yaml:"group_id" env:"GROUP_ID"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type ValidationConfig struct {
	// Timezone is an IANA name used to decide what "today" is. Empty means local time.
	Timezone        string `yaml:"timezone" env:"TIMEZONE"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" env:"CACHE_TTL_SECONDS"`
}

func (v ValidationConfig) Location() (*time.Location, error) {
	if v.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", v.Timezone, err)
	}
	return loc, nil
}

func (v ValidationConfig) CacheTTL() time.Duration {
	return time.Duration(v.CacheTTLSeconds) * time.Second
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

func defaults() Config {
	return Config{
		HTTP:       HTTPConfig{Address: ":8080", Swagger: true},
		GRPC:       GRPCConfig{Address: ":9090"},
		Validation: ValidationConfig{CacheTTLSeconds: 300},
		Log:        LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file at path, then applies environment overrides
// (BOOKINGCHECK_HTTP_ADDRESS, BOOKINGCHECK_KAFKA_BROKERS, ...). A .env file in
// the working directory is loaded first if present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "BOOKINGCHECK_"}); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}

	if _, err := cfg.Validation.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
