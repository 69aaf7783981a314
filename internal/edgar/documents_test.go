package edgar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aaplFiling() Filing {
	return Filing{
		CIK:             "0000320193",
		Company:         "Apple Inc.",
		Form:            "10-K",
		AccessionNumber: "0000320193-24-000123",
		FilingDate:      "2024-11-01",
		ReportDate:      "2024-09-28",
		PrimaryDocument: "aapl-20240928.htm",
	}
}

func TestFetchDocument_WritesNamedFile(t *testing.T) {
	client, outDir := newTestClient(t, newTestMux())

	path, err := client.FetchDocument(context.Background(), "AAPL", Form10K, aaplFiling())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "10-k", "AAPL_2024-11-01_10K.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "aapl-20240928.htm")
}

func TestFetchDocument_LowercaseTickerUppercasedInFilename(t *testing.T) {
	client, outDir := newTestClient(t, newTestMux())

	path, err := client.FetchDocument(context.Background(), "aapl", Form10K, aaplFiling())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "10-k", "AAPL_2024-11-01_10K.html"), path)
}

func TestFetchDocument_FailureLeavesNoFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	client, outDir := newTestClient(t, mux)

	_, err := client.FetchDocument(context.Background(), "AAPL", Form10K, aaplFiling())
	require.Error(t, err)
	assert.True(t, IsDownload(err))

	entries, err := os.ReadDir(filepath.Join(outDir, "10-k"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchDocument_FallsBackToIndexCandidate(t *testing.T) {
	archive := "/Archives/edgar/data/320193/000032019324000123"
	mux := http.NewServeMux()
	mux.HandleFunc(archive+"/aapl-20240928.htm", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc(archive+"/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"directory": {"item": [
			{"name": "form10-k.htm", "type": "form", "size": "900000"},
			{"name": "exhibit99.htm", "type": "EX-99", "size": "5000"},
			{"name": "index.html", "type": "", "size": "100"}
		]}}`)
	})
	mux.HandleFunc(archive+"/form10-k.htm", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>annual report</body></html>")
	})
	client, _ := newTestClient(t, mux)

	path, err := client.FetchDocument(context.Background(), "AAPL", Form10K, aaplFiling())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "annual report")
}

func TestFetchDocument_RejectsXBRLCandidate(t *testing.T) {
	archive := "/Archives/edgar/data/320193/000032019324000123"
	mux := http.NewServeMux()
	mux.HandleFunc(archive+"/aapl-20240928.htm", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc(archive+"/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"directory": {"item": [
			{"name": "form10-k.htm", "type": "form", "size": "900000"},
			{"name": "report.htm", "type": "form", "size": "100000"}
		]}}`)
	})
	mux.HandleFunc(archive+"/form10-k.htm", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><xbrl xmlns:xbrl="http://www.xbrl.org/2003/instance"></xbrl>`)
	})
	mux.HandleFunc(archive+"/report.htm", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>readable report</body></html>")
	})
	client, _ := newTestClient(t, mux)

	path, err := client.FetchDocument(context.Background(), "AAPL", Form10K, aaplFiling())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "readable report")
}

func TestDocumentURL(t *testing.T) {
	client := NewClient(nil, Options{ArchivesBaseURL: "https://www.sec.gov/Archives/edgar/data"})

	url := client.documentURL(aaplFiling(), "aapl-20240928.htm")
	assert.Equal(t,
		"https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/aapl-20240928.htm",
		url,
	)
}

func TestScoreIndexItem(t *testing.T) {
	// Form-name match plus short, digit-free name scores highest.
	s1, ok := scoreIndexItem(indexItem{Name: "form10-k.htm", Size: "500000"}, Form10K)
	require.True(t, ok)

	s2, ok := scoreIndexItem(indexItem{Name: "a12345678-20240928.htm", Size: "500000"}, Form10K)
	require.True(t, ok)
	assert.Greater(t, s1, s2)

	_, ok = scoreIndexItem(indexItem{Name: "exhibit99.htm", Size: "900000"}, Form10K)
	assert.False(t, ok)
	_, ok = scoreIndexItem(indexItem{Name: "index.html", Size: "100"}, Form10K)
	assert.False(t, ok)
	_, ok = scoreIndexItem(indexItem{Name: "chart.jpg", Size: "100"}, Form10K)
	assert.False(t, ok)
}

func TestSniffXBRLFile(t *testing.T) {
	dir := t.TempDir()

	xbrlPath := filepath.Join(dir, "xbrl.htm")
	require.NoError(t, os.WriteFile(xbrlPath, []byte(`<?xml version="1.0"?><xbrl></xbrl>`), 0o644))
	got, err := sniffXBRLFile(xbrlPath)
	require.NoError(t, err)
	assert.True(t, got)

	htmlPath := filepath.Join(dir, "plain.htm")
	require.NoError(t, os.WriteFile(htmlPath, []byte(`<html><body>hi</body></html>`), 0o644))
	got, err = sniffXBRLFile(htmlPath)
	require.NoError(t, err)
	assert.False(t, got)
}
