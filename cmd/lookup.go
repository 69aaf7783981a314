package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-cli/internal/edgar"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup TICKER...",
	Short: "Resolve tickers to CIK numbers",
	Long:  "Looks up one or more ticker symbols in the SEC's ticker table and prints the matching CIK and company name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newEDGARClient(cmd)

		rows := make([]lookupRow, 0, len(args))
		for _, ticker := range args {
			company, err := client.Lookup(ctx, ticker)
			rows = append(rows, lookupRow{ticker: ticker, company: company, err: err})
		}

		formatLookupRows(os.Stdout, rows)
		return nil
	},
}

type lookupRow struct {
	ticker  string
	company edgar.Company
	err     error
}

func formatLookupRows(out io.Writer, rows []lookupRow) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TICKER\tCIK\tCOMPANY")
	for _, r := range rows {
		if r.err != nil {
			_, _ = fmt.Fprintf(w, "%s\t-\t%s\n", r.ticker, r.err.Error())
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.company.Ticker, r.company.CIK, r.company.Title)
	}
	_ = w.Flush()
}

func init() {
	lookupCmd.Flags().StringP("email", "e", "", "contact email for the SEC User-Agent header")
	lookupCmd.Flags().String("output", "", "directory for the ticker-table cache")
	rootCmd.AddCommand(lookupCmd)
}
