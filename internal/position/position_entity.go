package position

import "strings"

// Category groups free-text job titles by the payroll rules that apply to them.
type Category string

const (
	CategoryProgrammer Category = "PROGRAMMER"
	CategoryOther      Category = "OTHER"
)

// programmerMarker is matched as a substring of the lower-cased title, so
// "Старший программист" and "Программист 1С" both qualify.
const programmerMarker = "программист"

// MinTitleLength is the shortest accepted job title, in runes.
const MinTitleLength = 2

func Classify(title string) Category {
	if strings.Contains(strings.ToLower(title), programmerMarker) {
		return CategoryProgrammer
	}
	return CategoryOther
}

func IsProgrammer(title string) bool {
	return Classify(title) == CategoryProgrammer
}
