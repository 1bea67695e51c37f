package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the sales report service
type Config struct {
	// Report configuration
	ReportTitle    string `env:"REPORT_TITLE,default=Sales Report"`
	EnablePDF      bool   `env:"ENABLE_PDF,default=true"`
	ScheduleTime   string `env:"SCHEDULE_TIME,default=09:00"`
	ReportTemplate string `env:"REPORT_TEMPLATE"`

	// Dataset source (URL takes precedence over the local file when set)
	DataFile string `env:"SALES_DATA_FILE,default=./data/sample_sales.csv"`
	DataURL  string `env:"SALES_DATA_URL"`

	// Artifact storage
	StorageMode string `env:"STORAGE_MODE,default=local"`
	OutputDir   string `env:"OUTPUT_DIR,default=./out"`
	GCSBucket   string `env:"GCS_BUCKET"`

	// Mail transport
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT,default=587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	MailFrom string `env:"MAIL_FROM"`
	MailTo   string `env:"MAIL_TO"`

	// Optional report commentary
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`

	// Service configuration
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from a .env file (if present) and the process
// environment variables
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// FromAddress returns the envelope sender, falling back to the SMTP user.
func (c *Config) FromAddress() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUser
}

// Recipients returns the parsed MAIL_TO list, falling back to the SMTP user.
func (c *Config) Recipients() []string {
	raw := c.MailTo
	if raw == "" {
		raw = c.SMTPUser
	}

	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
