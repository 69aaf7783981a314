package edgar

import (
	"fmt"
	"strings"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// Options configures a Client. Zero-value URL fields fall back to the
// public SEC endpoints.
type Options struct {
	TickerURL          string
	SubmissionsBaseURL string
	ArchivesBaseURL    string
	// OutputDir is the root under which per-form directories are created.
	OutputDir string
	// CacheDir holds the ticker-table disk cache. Defaults to
	// OutputDir/.cache.
	CacheDir string
}

// Client talks to the SEC EDGAR REST endpoints through a rate-limited
// fetcher. It is a per-run object: the ticker table is loaded once and
// held in memory for the lifetime of the client.
type Client struct {
	fetcher fetcher.Fetcher
	opts    Options

	// ticker (upper-case) -> zero-padded CIK, populated lazily.
	tickers map[string]Company
}

// NewClient creates a Client over the given fetcher.
func NewClient(f fetcher.Fetcher, opts Options) *Client {
	if opts.TickerURL == "" {
		opts.TickerURL = "https://www.sec.gov/files/company_tickers.json"
	}
	if opts.SubmissionsBaseURL == "" {
		opts.SubmissionsBaseURL = "https://data.sec.gov/submissions"
	}
	if opts.ArchivesBaseURL == "" {
		opts.ArchivesBaseURL = "https://www.sec.gov/Archives/edgar/data"
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Client{fetcher: f, opts: opts}
}

// PadCIK zero-pads a CIK to the 10-digit form the submissions API expects.
func PadCIK(cik string) string {
	cik = strings.TrimLeft(cik, "0")
	if cik == "" {
		cik = "0"
	}
	padded := fmt.Sprintf("%010s", cik)
	if len(padded) > 10 {
		padded = padded[:10]
	}
	return padded
}

// shortCIK strips leading zeros for use in archive URLs.
func shortCIK(cik string) string {
	s := strings.TrimLeft(cik, "0")
	if s == "" {
		return "0"
	}
	return s
}
