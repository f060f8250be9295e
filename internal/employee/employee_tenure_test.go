package employee_test

import (
	"testing"
	"time"

	"go-roster/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_TenureAt(t *testing.T) {
	tests := []struct {
		name  string
		hired time.Time
		now   time.Time
		want  employee.Tenure
	}{
		{"same day", date(2020, time.January, 15), date(2020, time.January, 15), employee.Tenure{}},
		{"end of month", date(2020, time.January, 31), date(2020, time.February, 29), employee.Tenure{Months: 1}},
		{"day before clipped end", date(2020, time.January, 31), date(2020, time.February, 28), employee.Tenure{}},
		{"long month into february", date(2024, time.August, 31), date(2025, time.February, 28), employee.Tenure{Months: 6}},
		{"leap day anniversary", date(2016, time.February, 29), date(2026, time.February, 28), employee.Tenure{Years: 10}},
		{"leap day one day short", date(2016, time.February, 29), date(2026, time.February, 27), employee.Tenure{Years: 9, Months: 11}},
		{"thirty first into thirtieth", date(2020, time.March, 31), date(2020, time.April, 30), employee.Tenure{Months: 1}},
		{"month boundary", date(2020, time.January, 31), date(2020, time.March, 1), employee.Tenure{Months: 1}},
		{"full year", date(2020, time.January, 15), date(2021, time.January, 15), employee.Tenure{Years: 1}},
		{"borrow year", date(2019, time.November, 20), date(2021, time.February, 10), employee.Tenure{Years: 1, Months: 2}},
		{"time of day ignored", date(2020, time.January, 15), date(2020, time.July, 15).Add(13 * time.Hour), employee.Tenure{Months: 6}},
		{"now before hire", date(2020, time.January, 15), date(2019, time.January, 15), employee.Tenure{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmployee(t, func(p *employee.Params) { p.HireDate = tt.hired })
			assert.Equal(t, tt.want, e.TenureAt(tt.now))
		})
	}
}
