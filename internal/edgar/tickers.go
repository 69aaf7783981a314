package edgar

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// tickerRow is one entry of the registry's company_tickers.json table,
// keyed by ordinal: {"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."},...}.
type tickerRow struct {
	CIKStr json.Number `json:"cik_str"`
	Ticker string      `json:"ticker"`
	Title  string      `json:"title"`
}

// Resolve looks up a ticker (case-insensitive) in the registry ticker
// table and returns its zero-padded CIK. Returns a ResolutionError when
// the ticker is absent; no further network calls are made for it.
func (c *Client) Resolve(ctx context.Context, ticker string) (string, error) {
	if err := c.loadTickers(ctx); err != nil {
		return "", err
	}

	company, ok := c.tickers[strings.ToUpper(ticker)]
	if !ok {
		return "", &ResolutionError{Ticker: ticker}
	}
	return company.CIK, nil
}

// Lookup returns the full company row for a ticker.
func (c *Client) Lookup(ctx context.Context, ticker string) (Company, error) {
	if err := c.loadTickers(ctx); err != nil {
		return Company{}, err
	}

	company, ok := c.tickers[strings.ToUpper(ticker)]
	if !ok {
		return Company{}, &ResolutionError{Ticker: ticker}
	}
	return company, nil
}

// loadTickers populates the in-memory ticker map once per run. The raw
// table is cached on disk and revalidated with a conditional GET so
// repeated runs cost a 304 instead of a ~700KB download.
func (c *Client) loadTickers(ctx context.Context) error {
	if c.tickers != nil {
		return nil
	}

	log := zap.L().With(zap.String("url", c.opts.TickerURL))

	cacheDir := c.opts.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(c.opts.OutputDir, ".cache")
	}
	cachePath := filepath.Join(cacheDir, "company_tickers.json")
	etagPath := cachePath + ".etag"

	var etag string
	if b, err := os.ReadFile(etagPath); err == nil {
		etag = strings.TrimSpace(string(b))
	}

	body, newETag, changed, err := c.fetcher.DownloadIfChanged(ctx, c.opts.TickerURL, etag)
	if err != nil {
		// Fall back to a stale cached table if one exists.
		if cached, readErr := os.ReadFile(cachePath); readErr == nil {
			log.Warn("ticker table fetch failed, using cached copy", zap.Error(err))
			return c.parseTickers(cached)
		}
		return eris.Wrap(err, "fetch ticker table")
	}

	if !changed {
		cached, readErr := os.ReadFile(cachePath)
		if readErr == nil {
			log.Debug("ticker table unchanged, using cached copy")
			return c.parseTickers(cached)
		}
		// Cache file lost but ETag survived: refetch unconditionally.
		body, newETag, _, err = c.fetcher.DownloadIfChanged(ctx, c.opts.TickerURL, "")
		if err != nil {
			return eris.Wrap(err, "fetch ticker table")
		}
	}

	data, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil {
		return eris.Wrap(err, "read ticker table")
	}

	c.writeTickerCache(cacheDir, cachePath, etagPath, data, newETag)

	return c.parseTickers(data)
}

// writeTickerCache persists the table and its ETag. Cache writes are
// best-effort: a read-only output dir must not fail the run.
func (c *Client) writeTickerCache(cacheDir, cachePath, etagPath string, data []byte, etag string) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		zap.L().Debug("skip ticker cache", zap.Error(err))
		return
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		zap.L().Debug("skip ticker cache", zap.Error(err))
		return
	}
	if etag != "" {
		_ = os.WriteFile(etagPath, []byte(etag), 0o644)
	}
}

func (c *Client) parseTickers(data []byte) error {
	rows, err := fetcher.DecodeJSONObject[map[string]tickerRow](bytes.NewReader(data))
	if err != nil {
		return eris.Wrap(err, "parse ticker table")
	}

	tickers := make(map[string]Company, len(*rows))
	for _, row := range *rows {
		if row.Ticker == "" {
			continue
		}
		tickers[strings.ToUpper(row.Ticker)] = Company{
			CIK:    PadCIK(row.CIKStr.String()),
			Ticker: strings.ToUpper(row.Ticker),
			Title:  row.Title,
		}
	}

	zap.L().Debug("loaded ticker table", zap.Int("companies", len(tickers)))
	c.tickers = tickers
	return nil
}
