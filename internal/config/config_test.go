package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.sec.gov/files/company_tickers.json", cfg.EDGAR.TickerURL)
	assert.Equal(t, "https://data.sec.gov/submissions", cfg.EDGAR.SubmissionsBaseURL)
	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data", cfg.EDGAR.ArchivesBaseURL)
	assert.Equal(t, 10.0, cfg.EDGAR.RatePerSec)
	assert.Equal(t, 30, cfg.EDGAR.TimeoutSecs)
	assert.Equal(t, 3, cfg.EDGAR.MaxRetries)
	assert.Equal(t, ".", cfg.EDGAR.OutputDir)
	assert.Equal(t, "https://www.annualreports.com", cfg.AnnualReports.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("EDGAR_EDGAR_CONTACT_EMAIL", "env@example.com")
	t.Setenv("EDGAR_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", cfg.EDGAR.ContactEmail)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUserAgent(t *testing.T) {
	c := EDGARConfig{AppName: "edgar-cli", ContactEmail: "cfg@example.com"}

	assert.Equal(t, "edgar-cli cfg@example.com", c.UserAgent(""))
	assert.Equal(t, "edgar-cli flag@example.com", c.UserAgent("flag@example.com"))
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
}
