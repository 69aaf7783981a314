package edgar

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// tickerTableJSON is a minimal company_tickers.json fixture.
const tickerTableJSON = `{
	"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
	"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"},
	"2": {"cik_str": 1318605, "ticker": "TSLA", "title": "Tesla, Inc."}
}`

// aaplSubmissionsJSON lists Apple filings: three 10-Ks (one date tie),
// one 10-Q and one 8-K.
const aaplSubmissionsJSON = `{
	"cik": 320193,
	"name": "Apple Inc.",
	"filings": {
		"recent": {
			"accessionNumber": [
				"0000320193-24-000123",
				"0000320193-24-000100",
				"0000320193-23-000106",
				"0000320193-23-000200",
				"0000320193-22-000108"
			],
			"filingDate": ["2024-11-01", "2024-08-02", "2023-11-03", "2023-11-03", "2022-10-28"],
			"reportDate": ["2024-09-28", "2024-06-29", "2023-09-30", "2023-09-30", "2022-09-24"],
			"form": ["10-K", "10-Q", "10-K", "10-K", "10-K"],
			"primaryDocument": [
				"aapl-20240928.htm",
				"aapl-20240629.htm",
				"aapl-20230930.htm",
				"aapl-20230930a.htm",
				"aapl-20220924.htm"
			]
		}
	}
}`

// newTestMux serves the ticker table, Apple submissions, and archive
// documents with plain HTML bodies.
func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, tickerTableJSON)
	})
	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, aaplSubmissionsJSON)
	})
	mux.HandleFunc("/Archives/edgar/data/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body>document %s</body></html>", r.URL.Path)
	})
	return mux
}

// newTestClient starts a server for the handler and returns a client
// whose endpoints all point at it. Output goes to a temp dir.
func newTestClient(t *testing.T, handler http.Handler) (*Client, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:     "edgar-cli-test test@example.com",
		Timeout:       5 * time.Second,
		MaxRetries:    1,
		SECRatePerSec: 1000,
	})

	outDir := t.TempDir()
	client := NewClient(f, Options{
		TickerURL:          srv.URL + "/files/company_tickers.json",
		SubmissionsBaseURL: srv.URL + "/submissions",
		ArchivesBaseURL:    srv.URL + "/Archives/edgar/data",
		OutputDir:          outDir,
	})
	return client, outDir
}
