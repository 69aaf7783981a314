package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	EDGAR         EDGARConfig         `yaml:"edgar" mapstructure:"edgar"`
	AnnualReports AnnualReportsConfig `yaml:"annualreports" mapstructure:"annualreports"`
	Log           LogConfig           `yaml:"log" mapstructure:"log"`
}

// EDGARConfig configures access to the SEC EDGAR endpoints.
type EDGARConfig struct {
	// ContactEmail is embedded in the User-Agent header, as required by the
	// SEC fair-access policy. Overridable per invocation with -e.
	ContactEmail string `yaml:"contact_email" mapstructure:"contact_email"`
	// AppName is the identifying prefix of the User-Agent header.
	AppName string `yaml:"app_name" mapstructure:"app_name"`
	// TickerURL serves the full ticker -> CIK table.
	TickerURL string `yaml:"ticker_url" mapstructure:"ticker_url"`
	// SubmissionsBaseURL serves per-company filing history JSON.
	SubmissionsBaseURL string `yaml:"submissions_base_url" mapstructure:"submissions_base_url"`
	// ArchivesBaseURL serves filing documents and index.json listings.
	ArchivesBaseURL string `yaml:"archives_base_url" mapstructure:"archives_base_url"`
	// RatePerSec caps outbound requests per second per SEC host.
	RatePerSec float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	// OutputDir is the root under which 10-k/, 10-q/, 13-f/ are created.
	OutputDir   string `yaml:"output_dir" mapstructure:"output_dir"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// AnnualReportsConfig configures the annualreports.com PDF scraper.
type AnnualReportsConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// UserAgent builds the SEC-compliant User-Agent string, preferring the
// given email override when non-empty.
func (c EDGARConfig) UserAgent(emailOverride string) string {
	email := c.ContactEmail
	if emailOverride != "" {
		email = emailOverride
	}
	return c.AppName + " " + email
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EDGAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("edgar.contact_email", "user@example.com")
	v.SetDefault("edgar.app_name", "edgar-cli")
	v.SetDefault("edgar.ticker_url", "https://www.sec.gov/files/company_tickers.json")
	v.SetDefault("edgar.submissions_base_url", "https://data.sec.gov/submissions")
	v.SetDefault("edgar.archives_base_url", "https://www.sec.gov/Archives/edgar/data")
	v.SetDefault("edgar.rate_per_sec", 10.0)
	v.SetDefault("edgar.output_dir", ".")
	v.SetDefault("edgar.timeout_secs", 30)
	v.SetDefault("edgar.max_retries", 3)
	v.SetDefault("annualreports.base_url", "https://www.annualreports.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
