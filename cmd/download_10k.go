package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-cli/internal/edgar"
)

var download10KCmd = &cobra.Command{
	Use:   "10k TICKER...",
	Short: "Download 10-K annual reports",
	Long: `Download the most recent 10-K annual reports for one or more tickers.

Files are saved as 10-k/{TICKER}_{DATE}_10K.html.`,
	Example: `  edgar-cli download 10k AAPL
  edgar-cli download 10k AAPL MSFT TSLA -n 10
  edgar-cli download 10k AAPL -e you@example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd, args, edgar.Form10K)
	},
}

func init() {
	downloadCmd.AddCommand(download10KCmd)
}
