package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go-roster/internal/employee"
	rostererrors "go-roster/internal/roster/errors"
	"go-roster/internal/shared/apperror"

	"github.com/gocarina/gocsv"
)

const (
	// Delimiter separates fields in both the input and the delimited export.
	Delimiter = ';'

	minColumns = 5
	maxColumns = 6
)

// importRow mirrors one data line. Columns are matched by position, the
// header row is skipped.
type importRow struct {
	FullName string `csv:"full_name"`
	Position string `csv:"position"`
	HireDate string `csv:"hire_date"`
	Salary   string `csv:"salary"`
	Sex      string `csv:"sex"`
	Premium  string `csv:"premium"`
}

type importConfig struct {
	now func() time.Time
}

type ImportOption func(*importConfig)

// WithClock sets the date hire dates may not exceed.
func WithClock(now func() time.Time) ImportOption {
	return func(c *importConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// ImportFile reads a roster file. The file is closed on every path.
func ImportFile(path string, opts ...ImportOption) ([]*employee.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.IO(err, "cannot open roster file")
	}
	defer f.Close()

	return Import(f, opts...)
}

// Import decodes a semicolon separated roster: a header line, then
// "Last First [Middle];Position;DD.MM.YYYY;Salary;Sex[;Premium]" rows.
func Import(r io.Reader, opts ...ImportOption) ([]*employee.Employee, error) {
	cfg := importConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.LazyQuotes = true

	// FieldsPerRecord is fixed by the header, every row must match it
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, rostererrors.ErrMissingHeader
	}
	if err != nil {
		return nil, apperror.Parse(err, rostererrors.ErrMalformedRow.Message)
	}
	if len(header) < minColumns || len(header) > maxColumns {
		return nil, fmt.Errorf("%w: got %d", rostererrors.ErrUnexpectedColumns, len(header))
	}

	lr := &lineReader{Reader: reader}
	var rows []importRow
	err = gocsv.UnmarshalCSVWithoutHeaders(lr, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return []*employee.Employee{}, nil
	}
	if err != nil {
		return nil, apperror.Parse(err, rostererrors.ErrMalformedRow.Message)
	}

	today := cfg.now()
	employees := make([]*employee.Employee, 0, len(rows))
	for i, row := range rows {
		e, err := row.toEmployee(today)
		if err != nil {
			return nil, apperror.Parse(fmt.Errorf("line %d: %w", lr.lines[i], err), rostererrors.ErrMalformedRow.Message)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// lineReader remembers the physical line of every record it returns.
// Blank lines are skipped by csv.Reader, so record index and line differ.
type lineReader struct {
	*csv.Reader
	lines []int
}

func (r *lineReader) Read() ([]string, error) {
	record, err := r.Reader.Read()
	if err != nil {
		return nil, err
	}
	line, _ := r.Reader.FieldPos(0)
	r.lines = append(r.lines, line)
	return record, nil
}

func (r *lineReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func (row importRow) toEmployee(today time.Time) (*employee.Employee, error) {
	parts := strings.Fields(row.FullName)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("%w: %q", rostererrors.ErrInvalidFullName, row.FullName)
	}
	p := employee.Params{
		LastName:  parts[0],
		FirstName: parts[1],
		Position:  row.Position,
		Sex:       row.Sex,
		Today:     today,
	}
	if len(parts) == 3 {
		p.MiddleName = parts[2]
	}

	hireDate, err := employee.ParseDate(row.HireDate)
	if err != nil {
		return nil, err
	}
	p.HireDate = hireDate

	salary, err := parseAmount(row.Salary)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", rostererrors.ErrInvalidSalary, row.Salary)
	}
	p.Salary = salary

	if strings.TrimSpace(row.Premium) != "" {
		premium, err := parseAmount(row.Premium)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", rostererrors.ErrInvalidPremium, row.Premium)
		}
		p.Premium = premium
	}

	return employee.New(p)
}

// parseAmount parses an integer written with digit-group spaces, e.g. "80 000".
func parseAmount(v string) (int64, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, v)
	return strconv.ParseInt(stripped, 10, 64)
}
