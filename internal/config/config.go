package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email EmailConfig `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // resume uploads
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	FirstAdmin struct {
		Email    string `yaml:"email"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"first_admin"`
}

// EmailConfig holds the SMTP relay settings for transactional mail.
type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

var AppConfig *Config

// LoadConfig binds configuration once at startup. A DATABASE_URL in the
// environment (optionally via .env) takes priority over config.yaml, which
// is how tests and containers inject their settings.
func LoadConfig() {
	var cfg Config

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyEnvOverrides(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = envOr("MAIL_HOST", "localhost")
	cfg.Email.SMTPPort, _ = strconv.Atoi(envOr("MAIL_PORT", "587"))
	cfg.Email.SMTPUsername = os.Getenv("MAIL_USER")
	cfg.Email.SMTPPassword = os.Getenv("MAIL_PASS")
	cfg.Email.FromEmail = envOr("MAIL_FROM", "noreply@jobboard.local")
	cfg.Email.FromName = "Job Board"

	cfg.Storage.BasePath = envOr("UPLOAD_PATH", "./uploads")
	cfg.Storage.BaseURL = "/api/v1/files"

	applyEnvOverrides(&cfg)
	AppConfig = &cfg
}

// applyEnvOverrides lets individual env vars win over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("FIRST_ADMIN_EMAIL"); v != "" {
		cfg.FirstAdmin.Email = v
	}
	if v := os.Getenv("FIRST_ADMIN_USERNAME"); v != "" {
		cfg.FirstAdmin.Username = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdmin.Password = v
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
