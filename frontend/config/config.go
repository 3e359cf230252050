package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type WebConfig struct {
	Address string        `yaml:"address" env:"FRONTEND_ADDRESS" env-default:"localhost:3000"`
	Timeout time.Duration `yaml:"timeout" env:"FRONTEND_TIMEOUT" env-default:"10s"`
}

type ApiConfig struct {
	ApiAddress string `yaml:"address" env:"API_ADDRESS" env-default:"http://analyzer:8080"`
	// Transcript retrieval and proofreading may take a while.
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"3m"`
}

type AuthConfig struct {
	// TokenTtl bounds the session cookie. The analyzer decides the token lifetime.
	TokenTtl time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"2m"`
}

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`

	Web  WebConfig  `yaml:"web_server"`
	Api  ApiConfig  `yaml:"api"`
	Auth AuthConfig `yaml:"auth"`
}

// MustLoad reads an optional .env file, then the YAML config at configPath.
func MustLoad(configPath string, cfg *Config) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("cannot read .env: %s", err)
	}
	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
}
