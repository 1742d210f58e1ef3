package report

import (
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/pkg/validator"
)

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type AttendanceReportRequest struct {
	From   string `json:"from"` // YYYY-MM-DD
	To     string `json:"to"`   // YYYY-MM-DD
	Format string `json:"format"`

	ParsedFrom time.Time `json:"-"`
	ParsedTo   time.Time `json:"-"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from is required"})
	} else if d, ok := validator.IsValidDate(r.From); ok {
		r.ParsedFrom = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be YYYY-MM-DD"})
	}

	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to is required"})
	} else if d, ok := validator.IsValidDate(r.To); ok {
		r.ParsedTo = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be YYYY-MM-DD"})
	}

	if !r.ParsedFrom.IsZero() && !r.ParsedTo.IsZero() && r.ParsedTo.Before(r.ParsedFrom) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}

	if validator.IsEmpty(r.Format) {
		r.Format = FormatCSV
	} else if !validator.IsInSlice(r.Format, []string{FormatCSV, FormatPDF}) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "format must be csv or pdf"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Document is a rendered report ready to be served for download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}
