package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-cli/internal/edgar"
)

var download10QCmd = &cobra.Command{
	Use:   "10q TICKER...",
	Short: "Download 10-Q quarterly reports",
	Long: `Download the most recent 10-Q quarterly reports for one or more tickers.

Files are saved as 10-q/{TICKER}_{DATE}_10Q.html.`,
	Example: `  edgar-cli download 10q AAPL -n 4`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd, args, edgar.Form10Q)
	},
}

func init() {
	downloadCmd.AddCommand(download10QCmd)
}
