package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	employeeerrors "go-roster/internal/employee/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DateLayout is the canonical DD.MM.YYYY rendering of dates.
	DateLayout = "02.01.2006"
	// parseLayout also accepts one-digit day and month.
	parseLayout = "2.1.2006"
)

var cyrillicName = regexp.MustCompile(`^[А-Яа-яЁё]+$`)

func normalizeName(value string, minLen int, tooShort, badAlphabet error) (string, error) {
	if runeLen(value) < minLen {
		return "", tooShort
	}
	if !cyrillicName.MatchString(value) {
		return "", badAlphabet
	}
	return titleCase(value), nil
}

// titleCase upper-cases the first letter of every whitespace separated word
// and lower-cases the rest, collapsing runs of whitespace.
func titleCase(value string) string {
	caser := cases.Title(language.Russian)
	return caser.String(strings.Join(strings.Fields(value), " "))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ParseDate parses a DD.MM.YYYY date in the local time zone.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(parseLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", employeeerrors.ErrInvalidHireDateFormat, value)
	}
	return date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func minHireDate(loc *time.Location) time.Time {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, loc)
}
