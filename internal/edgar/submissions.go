package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// companySubmissions models the per-company filing history JSON served at
// /submissions/CIK{cik}.json. Filing attributes arrive as parallel
// column arrays indexed by filing.
type companySubmissions struct {
	CIK     json.Number `json:"cik"`
	Name    string      `json:"name"`
	Filings struct {
		Recent filingColumns `json:"recent"`
	} `json:"filings"`
}

type filingColumns struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// ListFilings returns up to limit filings of the given form type for a
// zero-padded CIK, most recent first. Ordering is filing date descending
// with ties broken by accession number descending. Returns a ListingError
// when the request fails or no filings match.
func (c *Client) ListFilings(ctx context.Context, cik string, form FormType, limit int) ([]Filing, error) {
	url := fmt.Sprintf("%s/CIK%s.json", c.opts.SubmissionsBaseURL, cik)

	body, err := c.fetcher.Download(ctx, url)
	if err != nil {
		return nil, &ListingError{CIK: cik, Form: form.Name, Err: err}
	}
	defer body.Close() //nolint:errcheck

	sub, err := fetcher.DecodeJSONObject[companySubmissions](body)
	if err != nil {
		return nil, &ListingError{CIK: cik, Form: form.Name, Err: err}
	}

	recent := sub.Filings.Recent
	var filings []Filing
	for i, accession := range recent.AccessionNumber {
		if accession == "" || safeIndex(recent.Form, i) != form.Name {
			continue
		}
		filings = append(filings, Filing{
			CIK:             cik,
			Company:         sub.Name,
			Form:            form.Name,
			AccessionNumber: accession,
			FilingDate:      safeIndex(recent.FilingDate, i),
			ReportDate:      safeIndex(recent.ReportDate, i),
			PrimaryDocument: safeIndex(recent.PrimaryDocument, i),
		})
	}

	if len(filings) == 0 {
		return nil, &ListingError{CIK: cik, Form: form.Name, Err: eris.New("no matching filings")}
	}

	// The API serves newest-first already, but the ordering contract is
	// ours to keep. Dates are ISO strings so byte order is date order.
	sort.SliceStable(filings, func(i, j int) bool {
		if filings[i].FilingDate != filings[j].FilingDate {
			return filings[i].FilingDate > filings[j].FilingDate
		}
		return filings[i].AccessionNumber > filings[j].AccessionNumber
	})

	if limit > 0 && len(filings) > limit {
		filings = filings[:limit]
	}

	zap.L().Debug("listed filings",
		zap.String("cik", cik),
		zap.String("form", form.Name),
		zap.Int("count", len(filings)),
	)

	return filings, nil
}

// safeIndex returns the string at index i, or empty string if out of bounds.
func safeIndex(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
