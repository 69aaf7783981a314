package edgar

// FormType describes a filing category together with its local storage
// conventions.
type FormType struct {
	// Name is the exact EDGAR form string to match, e.g. "10-K".
	Name string
	// Dir is the output subdirectory, e.g. "10-k".
	Dir string
	// FileTag is the form component of saved filenames, e.g. "10K".
	FileTag string
}

// Well-known form types. EDGAR files institutional holdings reports under
// form 13F-HR; they are stored under 13-f/ with tag 13F to keep a uniform
// naming convention.
var (
	Form10K = FormType{Name: "10-K", Dir: "10-k", FileTag: "10K"}
	Form10Q = FormType{Name: "10-Q", Dir: "10-q", FileTag: "10Q"}
	Form13F = FormType{Name: "13F-HR", Dir: "13-f", FileTag: "13F"}
)

// Filing is one entry in a company's EDGAR filing history.
type Filing struct {
	CIK             string // zero-padded to 10 digits
	Company         string
	Form            string
	AccessionNumber string // e.g. "0000320193-24-000123"
	FilingDate      string // YYYY-MM-DD
	ReportDate      string
	PrimaryDocument string
}

// Company is one row of the registry's ticker table.
type Company struct {
	CIK    string // zero-padded to 10 digits
	Ticker string
	Title  string
}
