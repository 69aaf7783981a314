package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/edgar-cli/internal/edgar"
)

func TestFormatLookupRows(t *testing.T) {
	rows := []lookupRow{
		{ticker: "AAPL", company: edgar.Company{Ticker: "AAPL", CIK: "0000320193", Title: "Apple Inc."}},
		{ticker: "ZZZZ999", err: &edgar.ResolutionError{Ticker: "ZZZZ999"}},
	}

	var buf bytes.Buffer
	formatLookupRows(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "0000320193")
	assert.Contains(t, out, "Apple Inc.")
	assert.Contains(t, out, "ZZZZ999")
	assert.Contains(t, out, "not found in registry table")
}

func TestDownloadCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range downloadCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "10k")
	assert.Contains(t, names, "10q")
	assert.Contains(t, names, "13f")
	assert.Contains(t, names, "pdf")
}

func TestDownloadCommandsRequireTickers(t *testing.T) {
	for _, c := range []string{"10k", "10q", "13f"} {
		cmd, _, err := rootCmd.Find([]string{"download", c})
		assert.NoError(t, err)
		assert.Error(t, cmd.Args(cmd, nil))
	}
}
