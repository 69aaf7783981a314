package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-cli/internal/edgar"
)

var download13FCmd = &cobra.Command{
	Use:   "13f TICKER...",
	Short: "Download 13F holdings reports",
	Long: `Download the most recent 13F-HR institutional holdings reports for one
or more tickers.

Files are saved as 13-f/{TICKER}_{DATE}_13F.html.`,
	Example: `  edgar-cli download 13f BRK-B -n 4`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd, args, edgar.Form13F)
	},
}

func init() {
	downloadCmd.AddCommand(download13FCmd)
}
