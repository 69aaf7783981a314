// Package annualreports scrapes archived annual-report PDFs from
// annualreports.com as a companion source to the EDGAR HTML filings.
package annualreports

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// Report is one archived annual-report PDF found on a company page.
type Report struct {
	Year  int
	URL   string
	Title string
}

// Scraper finds and downloads annual-report PDFs for a company slug.
type Scraper struct {
	fetcher   fetcher.Fetcher
	baseURL   string
	outputDir string
}

// NewScraper creates a Scraper rooted at baseURL (annualreports.com in
// production, an httptest server in tests).
func NewScraper(f fetcher.Fetcher, baseURL, outputDir string) *Scraper {
	if baseURL == "" {
		baseURL = "https://www.annualreports.com"
	}
	if outputDir == "" {
		outputDir = "."
	}
	return &Scraper{fetcher: f, baseURL: baseURL, outputDir: outputDir}
}

// archivePDFYear matches hosted archive PDFs like NASDAQ_AAPL_2023.pdf.
var archivePDFYear = regexp.MustCompile(`_(\d{4})\.pdf$`)

// ListReports fetches the company page and returns its archived PDFs,
// newest first, de-duplicated by year.
func (s *Scraper) ListReports(ctx context.Context, slug string) ([]Report, error) {
	pageURL := fmt.Sprintf("%s/Company/%s", s.baseURL, slug)

	body, err := s.fetcher.Download(ctx, pageURL)
	if err != nil {
		return nil, eris.Wrapf(err, "fetch company page %s", slug)
	}
	defer body.Close() //nolint:errcheck

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, eris.Wrap(err, "parse company page")
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, eris.Wrap(err, "parse base url")
	}

	seen := make(map[int]bool)
	var reports []Report
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "HostedData/AnnualReportArchive") || !strings.HasSuffix(href, ".pdf") {
			return
		}
		m := archivePDFYear.FindStringSubmatch(href)
		if m == nil {
			return
		}
		year, err := strconv.Atoi(m[1])
		if err != nil || seen[year] {
			return
		}
		seen[year] = true

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = fmt.Sprintf("Annual Report %d", year)
		}
		reports = append(reports, Report{
			Year:  year,
			URL:   base.ResolveReference(ref).String(),
			Title: title,
		})
	})

	if len(reports) == 0 {
		return nil, eris.Errorf("no annual report PDFs found for %s", slug)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Year > reports[j].Year })
	return reports, nil
}

// DownloadReports downloads up to count PDFs for a company slug, skipping
// years before startYear (0 means no lower bound). Individual download
// failures are logged and skipped. Returns paths written.
func (s *Scraper) DownloadReports(ctx context.Context, slug string, count, startYear int) ([]string, error) {
	reports, err := s.ListReports(ctx, slug)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.outputDir, "10-k")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrap(err, "create output dir")
	}

	log := zap.L().With(zap.String("company", slug))

	var paths []string
	for _, r := range reports {
		if count > 0 && len(paths) >= count {
			break
		}
		if startYear > 0 && r.Year < startYear {
			continue
		}

		name := fmt.Sprintf("%s_%d_annual_report.pdf", slug, r.Year)
		path := filepath.Join(dir, name)

		if _, err := s.fetcher.DownloadToFile(ctx, r.URL, path); err != nil {
			log.Warn("pdf download failed", zap.Int("year", r.Year), zap.Error(err))
			continue
		}
		log.Info("downloaded annual report", zap.Int("year", r.Year), zap.String("path", path))
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, eris.Errorf("no PDFs downloaded for %s", slug)
	}
	return paths, nil
}
