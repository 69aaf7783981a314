package edgar

import (
	"context"

	"go.uber.org/zap"
)

// TickerResult summarizes one ticker's downloads within a batch.
type TickerResult struct {
	Ticker    string
	CIK       string
	Requested int
	Succeeded int
	Failed    int
	Files     []string
	// Err is set when the ticker failed before any download could start
	// (resolution or listing failure).
	Err error
}

// DownloadBatch downloads up to count filings of the given form for each
// ticker, sequentially. Per-ticker and per-filing failures are recorded
// and the batch continues; the returned slice has one entry per input
// ticker, in order. Once the context is cancelled, remaining tickers are
// not attempted and carry the context error.
func (c *Client) DownloadBatch(ctx context.Context, tickers []string, form FormType, count int) []TickerResult {
	results := make([]TickerResult, 0, len(tickers))

	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			results = append(results, TickerResult{Ticker: ticker, Err: err})
			continue
		}
		results = append(results, c.downloadTicker(ctx, ticker, form, count))
	}

	return results
}

func (c *Client) downloadTicker(ctx context.Context, ticker string, form FormType, count int) TickerResult {
	log := zap.L().With(
		zap.String("ticker", ticker),
		zap.String("form", form.Name),
	)
	res := TickerResult{Ticker: ticker}

	cik, err := c.Resolve(ctx, ticker)
	if err != nil {
		log.Warn("skipping ticker", zap.Error(err))
		res.Err = err
		return res
	}
	res.CIK = cik

	filings, err := c.ListFilings(ctx, cik, form, count)
	if err != nil {
		log.Warn("skipping ticker", zap.Error(err))
		res.Err = err
		return res
	}
	res.Requested = len(filings)

	for _, filing := range filings {
		path, err := c.FetchDocument(ctx, ticker, form, filing)
		if err != nil {
			log.Warn("filing download failed",
				zap.String("accession", filing.AccessionNumber),
				zap.Error(err),
			)
			res.Failed++
			continue
		}
		log.Info("downloaded filing",
			zap.String("date", filing.FilingDate),
			zap.String("path", path),
		)
		res.Succeeded++
		res.Files = append(res.Files, path)
	}

	return res
}
