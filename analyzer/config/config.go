package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type ApiConfig struct {
	Address string        `yaml:"address" env:"API_ADDRESS" env-default:"localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
}

type AuthConfig struct {
	AdminUser     string        `yaml:"admin_user" env:"ADMIN_USER" env-default:"admin"`
	AdminPassword string        `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"password"`
	JwtSecret     string        `yaml:"jwt_secret" env:"ADMIN_JWT_KEY" env-default:"your-secret-key"`
	TokenTtl      time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"2m"`
}

type Limits struct {
	AnalyzeConcurrency int `yaml:"analyze_concurrency" env:"ANALYZE_CONCURRENCY" env-default:"10"`
	CompareRate        int `yaml:"compare_rate" env:"COMPARE_RATE" env-default:"5"`
	// DocumentConcurrency bounds how many documents of one comparison are resolved at once.
	DocumentConcurrency int `yaml:"document_concurrency" env:"DOCUMENT_CONCURRENCY" env-default:"4"`
}

type YoutubeConfig struct {
	URL      string        `yaml:"url" env:"YOUTUBE_URL" env-default:"https://www.youtube.com"`
	Language string        `yaml:"language" env:"YOUTUBE_LANGUAGE" env-default:"en"`
	Timeout  time.Duration `yaml:"timeout" env:"YOUTUBE_TIMEOUT" env-default:"30s"`
}

type ProofreadConfig struct {
	// URL of a LanguageTool server. Empty disables proofreading.
	URL       string        `yaml:"url" env:"LANGUAGETOOL_URL"`
	Language  string        `yaml:"language" env:"LANGUAGETOOL_LANGUAGE" env-default:"en-US"`
	MaxLength int           `yaml:"max_length" env:"LANGUAGETOOL_MAX_LENGTH" env-default:"20000"`
	Timeout   time.Duration `yaml:"timeout" env:"LANGUAGETOOL_TIMEOUT" env-default:"30s"`
	// AnalyzeCorrected ranks keywords of the corrected transcript.
	AnalyzeCorrected bool `yaml:"analyze_corrected" env:"ANALYZE_CORRECTED" env-default:"false"`
}

type CacheConfig struct {
	// DBAddress of PostgreSQL. Empty disables the transcript cache.
	DBAddress     string        `yaml:"db_address" env:"DB_ADDRESS"`
	TTL           time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"168h"`
	PruneInterval time.Duration `yaml:"prune_interval" env:"CACHE_PRUNE_INTERVAL" env-default:"1h"`
}

type BrokerConfig struct {
	// Address of NATS. Empty disables events.
	Address string `yaml:"address" env:"BROKER_ADDRESS"`
	Subject string `yaml:"subject" env:"BROKER_SUBJECT" env-default:"keywords"`
}

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	// WordsAddress of the Words service. Empty counts words in process.
	WordsAddress string `yaml:"words_address" env:"WORDS_ADDRESS" env-default:"words:8081"`

	ApiConfig ApiConfig       `yaml:"api_server"`
	Auth      AuthConfig      `yaml:"auth"`
	Limits    Limits          `yaml:"limits"`
	Youtube   YoutubeConfig   `yaml:"youtube"`
	Proofread ProofreadConfig `yaml:"proofread"`
	Cache     CacheConfig     `yaml:"cache"`
	Broker    BrokerConfig    `yaml:"broker"`
}

// MustLoad reads an optional .env file, then the YAML config at configPath.
// Environment variables override values from the file.
func MustLoad(configPath string, cfg *Config) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("cannot read .env: %s", err)
	}
	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
}
