package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so TTLs can be written as "1h" / "720h"
// in the yaml file.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string   `yaml:"smtp_host"`
		SMTPPort     int      `yaml:"smtp_port"`
		SMTPUser     string   `yaml:"smtp_user"`
		SMTPPassword string   `yaml:"smtp_password"`
		FromEmail    string   `yaml:"from_email"`
		SendTimeout  Duration `yaml:"send_timeout"`
	} `yaml:"email"`
	Auth struct {
		JWTSecret       string   `yaml:"jwt_secret"`
		TokenTTL        Duration `yaml:"token_ttl"`
		ResetTokenTTL   Duration `yaml:"reset_token_ttl"`
		BcryptCost      int      `yaml:"bcrypt_cost"`
		FrontendBaseURL string   `yaml:"frontend_base_url"`
		ResetAutoLogin  bool     `yaml:"reset_auto_login"`
		NormalizeEmail  bool     `yaml:"normalize_email"`
	} `yaml:"auth"`
}

// Load reads the yaml config file and applies environment overrides
// for secrets, so credentials never have to live in the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Email.SendTimeout = Duration(10 * time.Second)
	cfg.Auth.TokenTTL = Duration(30 * 24 * time.Hour)
	cfg.Auth.ResetTokenTTL = Duration(1 * time.Hour)
	cfg.Auth.ResetAutoLogin = true

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if v := os.Getenv("AUTHGATE_DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("AUTHGATE_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("AUTHGATE_SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth jwt_secret is required")
	}
	if cfg.Auth.FrontendBaseURL == "" {
		return nil, fmt.Errorf("auth frontend_base_url is required")
	}
	return cfg, nil
}
