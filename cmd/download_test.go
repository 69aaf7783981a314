package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-cli/internal/config"
	"github.com/sells-group/edgar-cli/internal/edgar"
)

// Every fetcher built from the commands, the PDF scraper's included, must
// carry the contact email from the -e flag in its User-Agent.
func TestNewFetcherUsesEmailFlag(t *testing.T) {
	cfg = &config.Config{EDGAR: config.EDGARConfig{
		AppName:      "edgar-cli",
		ContactEmail: "cfg@example.com",
		TimeoutSecs:  5,
		MaxRetries:   1,
		RatePerSec:   1000,
	}}

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := &cobra.Command{}
	c.Flags().StringP("email", "e", "", "")
	require.NoError(t, c.Flags().Set("email", "flag@example.com"))

	f := newFetcher(c)
	body, err := f.Download(context.Background(), srv.URL+"/ua")
	require.NoError(t, err)
	_ = body.Close()

	assert.Equal(t, "edgar-cli flag@example.com", gotUA)
}

func TestFormatBatchResults(t *testing.T) {
	results := []edgar.TickerResult{
		{Ticker: "AAPL", CIK: "0000320193", Requested: 2, Succeeded: 2},
		{Ticker: "MSFT", CIK: "0000789019", Requested: 2, Succeeded: 1, Failed: 1},
		{Ticker: "ZZZZ999", Err: &edgar.ResolutionError{Ticker: "ZZZZ999"}},
	}

	var buf bytes.Buffer
	formatBatchResults(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "TICKER")
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "0000320193")
	assert.Contains(t, out, "not found in registry table")

	// Unresolved tickers show a placeholder CIK.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[4], "ZZZZ999")
	assert.Contains(t, lines[4], "-")
}

func TestFormatBatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatBatchResults(&buf, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "toolongstr...", truncate("toolongstring", 10))

	// Multi-byte runes count as one character and are never split.
	assert.Equal(t, "é é é é é", truncate("é é é é é", 9))
	assert.Equal(t, "日本語テ...", truncate("日本語テスト", 4))
}
