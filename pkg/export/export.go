package export

import "errors"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

var (
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrNoMatchingExpenses = errors.New("no expenses match the selected filters")
)

// DateRange is an inclusive calendar date range; To is normalized to
// the end of its day during filtering.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PDFOptions are the optional sections of the PDF report.
type PDFOptions struct {
	IncludeBudget            bool `json:"includeBudget"`
	IncludeCharts            bool `json:"includeCharts"`
	IncludeCategoryBreakdown bool `json:"includeCategoryBreakdown"`
}

// Options fully enumerates the export configuration. An absent filter
// criterion (nil date range, empty category list) is not applied.
type Options struct {
	Format     Format     `json:"format"`
	DateRange  *DateRange `json:"dateRange,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	PDF        PDFOptions `json:"pdfOptions"`
	Filename   string     `json:"filename"`
	DarkMode   bool       `json:"darkMode"`
}

// Result is the rendered export payload ready for download.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}
