package roster

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"go-roster/internal/employee"
	rostererrors "go-roster/internal/roster/errors"
	"go-roster/internal/shared/apperror"

	"github.com/gocarina/gocsv"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Exporter serialises a roster in one output format.
type Exporter interface {
	Format() Format
	Export(w io.Writer, employees []*employee.Employee) error
}

// ExporterFor returns the exporter for a format name, case-insensitively.
func ExporterFor(format string) (Exporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatJSON:
		return JSONExporter{}, nil
	case FormatCSV:
		return CSVExporter{}, nil
	default:
		return nil, rostererrors.ErrUnknownFormat
	}
}

// JSONExporter writes an indented array of records. Cyrillic text is kept as is.
type JSONExporter struct{}

func (JSONExporter) Format() Format { return FormatJSON }

func (JSONExporter) Export(w io.Writer, employees []*employee.Employee) error {
	if len(employees) == 0 {
		return rostererrors.ErrEmptyRoster
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(employee.Records(employees)); err != nil {
		return apperror.IO(err, "cannot write json export")
	}
	return nil
}

// CSVExporter writes a header row and one semicolon separated row per employee.
type CSVExporter struct{}

func (CSVExporter) Format() Format { return FormatCSV }

func (CSVExporter) Export(w io.Writer, employees []*employee.Employee) error {
	if len(employees) == 0 {
		return rostererrors.ErrEmptyRoster
	}
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	if err := gocsv.MarshalCSV(employee.Records(employees), gocsv.NewSafeCSVWriter(cw)); err != nil {
		return apperror.IO(err, "cannot write csv export")
	}
	return nil
}

// WriteFile exports employees to path, creating or truncating it. A failure
// half way leaves a partially written file behind.
func WriteFile(path string, exp Exporter, employees []*employee.Employee) (err error) {
	if len(employees) == 0 {
		return rostererrors.ErrEmptyRoster
	}
	f, err := os.Create(path)
	if err != nil {
		return apperror.IO(err, "cannot open export file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperror.IO(cerr, "cannot close export file")
		}
	}()

	return exp.Export(f, employees)
}
