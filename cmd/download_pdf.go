package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-cli/internal/annualreports"
)

var downloadPDFCmd = &cobra.Command{
	Use:   "pdf COMPANY-SLUG",
	Short: "Download annual report PDFs from annualreports.com",
	Long: `Download archived annual-report PDFs for a company from
annualreports.com. The company slug comes from the site's URL, e.g.
"apple-inc" for /Company/apple-inc.

Files are saved as 10-k/{slug}_{year}_annual_report.pdf.`,
	Example: `  edgar-cli download pdf apple-inc
  edgar-cli download pdf tesla-inc -n 5
  edgar-cli download pdf microsoft-corporation --start-year 2020`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		count, _ := cmd.Flags().GetInt("number")
		startYear, _ := cmd.Flags().GetInt("start-year")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.EDGAR.OutputDir
		}

		scraper := annualreports.NewScraper(newFetcher(cmd), cfg.AnnualReports.BaseURL, output)

		paths, err := scraper.DownloadReports(ctx, args[0], count, startYear)
		if err != nil {
			return eris.Wrap(err, "download pdf")
		}

		fmt.Printf("Downloaded %d PDF(s)\n", len(paths))
		return nil
	},
}

func init() {
	downloadPDFCmd.Flags().Int("start-year", 0, "skip reports filed before this year")
	downloadCmd.AddCommand(downloadPDFCmd)
}
