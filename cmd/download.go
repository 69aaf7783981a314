package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-cli/internal/edgar"
	"github.com/sells-group/edgar-cli/internal/fetcher"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download filings from SEC EDGAR",
	Long:  "Downloads recent filings by ticker symbol into 10-k/, 10-q/, 13-f/ directories, one file per filing.",
}

func init() {
	downloadCmd.PersistentFlags().IntP("number", "n", 5, "number of recent filings to download per ticker")
	downloadCmd.PersistentFlags().StringP("email", "e", "", "contact email for the SEC User-Agent header")
	downloadCmd.PersistentFlags().String("output", "", "output directory root (default from config)")
	rootCmd.AddCommand(downloadCmd)
}

// newFetcher builds the rate-limited HTTP fetcher from config plus the
// shared email flag. The SEC requires a contact address in the
// User-Agent, so the flag override applies everywhere a fetcher is built.
func newFetcher(cmd *cobra.Command) *fetcher.HTTPFetcher {
	email, _ := cmd.Flags().GetString("email")
	return fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:     cfg.EDGAR.UserAgent(email),
		Timeout:       time.Duration(cfg.EDGAR.TimeoutSecs) * time.Second,
		MaxRetries:    cfg.EDGAR.MaxRetries,
		SECRatePerSec: cfg.EDGAR.RatePerSec,
	})
}

// newEDGARClient builds the fetcher and EDGAR client from config plus the
// shared download flags.
func newEDGARClient(cmd *cobra.Command) *edgar.Client {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.EDGAR.OutputDir
	}

	return edgar.NewClient(newFetcher(cmd), edgar.Options{
		TickerURL:          cfg.EDGAR.TickerURL,
		SubmissionsBaseURL: cfg.EDGAR.SubmissionsBaseURL,
		ArchivesBaseURL:    cfg.EDGAR.ArchivesBaseURL,
		OutputDir:          output,
	})
}

// runDownload is the shared RunE body for the per-form subcommands.
// Individual ticker and filing failures are reported in the summary but
// do not produce a non-zero exit; only setup errors do.
func runDownload(cmd *cobra.Command, args []string, form edgar.FormType) error {
	ctx := cmd.Context()
	count, _ := cmd.Flags().GetInt("number")

	tickers := make([]string, 0, len(args))
	for _, a := range args {
		tickers = append(tickers, strings.ToUpper(strings.TrimSpace(a)))
	}

	client := newEDGARClient(cmd)

	zap.L().Info("starting download",
		zap.Strings("tickers", tickers),
		zap.String("form", form.Name),
		zap.Int("count", count),
	)

	results := client.DownloadBatch(ctx, tickers, form, count)
	formatBatchResults(os.Stdout, results)

	return nil
}

// formatBatchResults writes the per-ticker summary table to w.
func formatBatchResults(out io.Writer, results []edgar.TickerResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TICKER\tCIK\tOK\tFAILED\tERROR")
	_, _ = fmt.Fprintln(w, "------\t---\t--\t------\t-----")

	for _, r := range results {
		errMsg := ""
		if r.Err != nil {
			errMsg = truncate(r.Err.Error(), 60)
		}
		cik := r.CIK
		if cik == "" {
			cik = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.Ticker,
			cik,
			r.Succeeded,
			r.Failed,
			errMsg,
		)
	}
	_ = w.Flush()
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
