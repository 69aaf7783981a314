package edgar

import (
	"errors"
	"fmt"
)

// ResolutionError indicates a ticker absent from the registry ticker table.
type ResolutionError struct {
	Ticker string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("ticker %q not found in registry table", e.Ticker)
}

// ListingError indicates the filing-history request failed or returned no
// filings matching the requested form type.
type ListingError struct {
	CIK  string
	Form string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("list %s filings for CIK %s: %v", e.Form, e.CIK, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// DownloadError indicates a filing document could not be retrieved.
type DownloadError struct {
	Accession string
	Err       error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download filing %s: %v", e.Accession, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IsResolution reports whether err is (or wraps) a ResolutionError.
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}

// IsListing reports whether err is (or wraps) a ListingError.
func IsListing(err error) bool {
	var le *ListingError
	return errors.As(err, &le)
}

// IsDownload reports whether err is (or wraps) a DownloadError.
func IsDownload(err error) bool {
	var de *DownloadError
	return errors.As(err, &de)
}
