package edgar

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-cli/internal/fetcher"
)

// filingIndex models the index.json directory listing for one accession.
type filingIndex struct {
	Directory struct {
		Item []indexItem `json:"item"`
	} `json:"directory"`
}

type indexItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
	// EDGAR serves size as a string, frequently empty.
	Size string `json:"size"`
}

// FetchDocument downloads one filing's primary document to
// {OutputDir}/{form.Dir}/{TICKER}_{filingDate}_{form.FileTag}.html and
// returns the written path. When the primary document cannot be
// retrieved, candidate documents from the filing's index.json listing are
// tried in priority order. A failed fetch leaves no file behind and
// returns a DownloadError.
func (c *Client) FetchDocument(ctx context.Context, ticker string, form FormType, filing Filing) (string, error) {
	dir := filepath.Join(c.opts.OutputDir, form.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &DownloadError{Accession: filing.AccessionNumber, Err: eris.Wrap(err, "create output dir")}
	}

	name := fmt.Sprintf("%s_%s_%s.html", strings.ToUpper(ticker), filing.FilingDate, form.FileTag)
	path := filepath.Join(dir, name)

	log := zap.L().With(
		zap.String("ticker", ticker),
		zap.String("accession", filing.AccessionNumber),
	)

	// The primary document from the submissions API is authoritative and
	// saved verbatim, even when it is inline XBRL.
	var lastErr error
	if filing.PrimaryDocument != "" {
		err := c.saveDocument(ctx, filing, filing.PrimaryDocument, path)
		if err == nil {
			return path, nil
		}
		lastErr = err
		log.Warn("primary document fetch failed, consulting index", zap.Error(err))
	} else {
		lastErr = eris.New("filing has no primary document")
	}

	// Fallback: score the filing's directory listing for viewable HTML.
	candidates, err := c.indexCandidates(ctx, filing, form)
	if err != nil {
		log.Debug("index.json unavailable", zap.Error(err))
	}
	for _, doc := range candidates {
		if doc == filing.PrimaryDocument {
			continue
		}
		if err := c.saveDocument(ctx, filing, doc, path); err != nil {
			lastErr = err
			log.Debug("candidate document fetch failed", zap.String("doc", doc), zap.Error(err))
			continue
		}
		// Fallback candidates are only kept if they are human-readable.
		if sniffed, serr := sniffXBRLFile(path); serr == nil && sniffed {
			_ = os.Remove(path)
			lastErr = eris.Errorf("candidate %s is raw XBRL", doc)
			continue
		}
		return path, nil
	}

	return "", &DownloadError{Accession: filing.AccessionNumber, Err: lastErr}
}

// saveDocument downloads one named document of a filing to path, writing
// through a temp file so a failed fetch leaves nothing behind.
func (c *Client) saveDocument(ctx context.Context, filing Filing, doc, path string) error {
	url := c.documentURL(filing, doc)

	body, err := c.fetcher.Download(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return eris.Wrap(err, "create file")
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return eris.Wrap(err, "write file")
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return eris.Wrap(err, "close file")
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return eris.Wrap(err, "rename file")
	}
	return nil
}

// documentURL builds the archive URL for one document of a filing. The
// path uses the unpadded CIK from the accession number prefix and the
// accession with hyphens removed.
func (c *Client) documentURL(filing Filing, doc string) string {
	accession := strings.ReplaceAll(filing.AccessionNumber, "-", "")
	cik := shortCIK(strings.SplitN(filing.AccessionNumber, "-", 2)[0])
	return fmt.Sprintf("%s/%s/%s/%s", c.opts.ArchivesBaseURL, cik, accession, doc)
}

// indexCandidates fetches the filing's index.json and returns candidate
// HTML document names, best first.
func (c *Client) indexCandidates(ctx context.Context, filing Filing, form FormType) ([]string, error) {
	body, err := c.fetcher.Download(ctx, c.documentURL(filing, "index.json"))
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	idx, err := fetcher.DecodeJSONObject[filingIndex](body)
	if err != nil {
		return nil, err
	}

	type scored struct {
		name  string
		score int
	}
	var docs []scored
	for _, item := range idx.Directory.Item {
		s, ok := scoreIndexItem(item, form)
		if !ok {
			continue
		}
		docs = append(docs, scored{name: item.Name, score: s})
	}

	sort.SliceStable(docs, func(i, j int) bool { return docs[i].score > docs[j].score })

	// Three candidates is plenty; each miss costs a rate-limited request.
	if len(docs) > 3 {
		docs = docs[:3]
	}
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.name
	}
	return names, nil
}

// scoreIndexItem ranks a directory entry as a viewable filing document.
// Exhibits, index pages and graphics are excluded outright; the rest are
// scored by form-name match, filename shape, and size.
func scoreIndexItem(item indexItem, form FormType) (int, bool) {
	name := item.Name
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".htm") && !strings.HasSuffix(lower, ".html") {
		return 0, false
	}
	excluded := []string{"exhibit", "-ex", "_ex", "ex-", "ex_", "index.htm", "index.html"}
	for _, x := range excluded {
		if strings.Contains(lower, x) {
			return 0, false
		}
	}

	score := 0
	formLower := strings.ToLower(form.Name)
	tagLower := strings.ToLower(form.FileTag)
	if strings.Contains(lower, formLower) || strings.Contains(lower, tagLower) {
		score += 100
	}
	// Filenames starting with digits are usually XBRL renderings.
	head := name
	if len(head) > 10 {
		head = head[:10]
	}
	if !strings.ContainsAny(head, "0123456789") {
		score += 50
	}
	if len(name) < 20 {
		score += 25
	}
	if size, err := strconv.Atoi(item.Size); err == nil {
		bonus := size / 10000
		if bonus > 50 {
			bonus = 50
		}
		score += bonus
	}
	return score, true
}

// sniffXBRLFile reports whether the saved file looks like a raw XBRL or
// inline XBRL document rather than viewable HTML.
func sniffXBRLFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close() //nolint:errcheck

	head := make([]byte, 2000)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	header := strings.ToLower(string(head[:n]))

	indicators := []string{
		"xmlns:xbrl",
		"xmlns:ix",
		"inlinexbrl",
		"xbrl.org/2013/inlinexbrl",
		"<?xml version",
	}
	for _, ind := range indicators {
		if strings.Contains(header, ind) {
			return true, nil
		}
	}
	return false, nil
}
