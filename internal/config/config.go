// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseURL string `yaml:"base_url" env:"RECRUIT_BASE_URL"`
	CycleID int    `yaml:"cycle_id" env:"RECRUIT_CYCLE_ID"`
	//Telegram reporting (optional, admin side)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Archive store (optional, admin side)
	ArchiveDSN string `yaml:"archive_dsn" env:"ARCHIVE_DATABASE_URL"`
	//Paths
	TokenPath   string `yaml:"token_path"`
	DownloadDir string `yaml:"download_dir"`
	//Admin list paging
	PageSize int `yaml:"page_size"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if base := os.Getenv("RECRUIT_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	if cycle := os.Getenv("RECRUIT_CYCLE_ID"); cycle != "" {
		id, err := strconv.Atoi(cycle)
		if err != nil {
			log.Fatalf("Invalid RECRUIT_CYCLE_ID: %v", err)
		}
		cfg.CycleID = id
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if dsn := os.Getenv("ARCHIVE_DATABASE_URL"); dsn != "" {
		cfg.ArchiveDSN = dsn
	}

	//Set default values if not set
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://official.boyuan.club"
	}

	if cfg.CycleID == 0 {
		cfg.CycleID = 2
	}

	if cfg.TokenPath == "" {
		cfg.TokenPath = ".credentials/token.json"
	}

	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "downloads"
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = 9
	}

	return cfg
}

// TelegramEnabled reports whether review-run reporting is configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
