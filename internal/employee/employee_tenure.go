package employee

import "time"

// Tenure is the whole number of years and remaining months between two dates.
type Tenure struct {
	Years  int
	Months int
}

// TenureAt measures the time from the hire date to now on the calendar. A
// month counts once the hire day, clipped to the month's last day, is
// reached: 31.01 -> 29.02 is 1 month.
func (e *Employee) TenureAt(now time.Time) Tenure {
	return tenureBetween(e.hireDate, now)
}

func tenureBetween(from, to time.Time) Tenure {
	from = dateOnly(from)
	to = dateOnly(to.In(from.Location()))
	if to.Before(from) {
		return Tenure{}
	}

	fy, fm, _ := from.Date()
	ty, tm, _ := to.Date()

	months := (ty-fy)*12 + int(tm) - int(fm)
	for months > 0 && addMonthsClipped(from, months).After(to) {
		months--
	}
	return Tenure{Years: months / 12, Months: months % 12}
}

// addMonthsClipped adds n months to t, keeping the day within the target month.
func addMonthsClipped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysIn(monthStart time.Time) int {
	return monthStart.AddDate(0, 1, -1).Day()
}
