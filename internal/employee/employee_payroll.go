package employee

import (
	"fmt"
	"time"

	"go-roster/internal/position"

	"github.com/shopspring/decimal"
)

const (
	// HolidayBonus is paid for 23 February (men) and 8 March (women).
	HolidayBonus int64 = 2000

	// IndexationTenureYears is the tenure from which the higher raise applies.
	IndexationTenureYears = 10
)

var (
	programmerBonusRate = decimal.RequireFromString("0.03")
	seniorIndexRate     = decimal.RequireFromString("1.07")
	regularIndexRate    = decimal.RequireFromString("1.05")
)

// PremProg adds 3% of salary to the premium of programmers.
// Reports whether the premium changed.
func (e *Employee) PremProg() bool {
	if !position.IsProgrammer(e.position) {
		return false
	}
	bonus := decimal.NewFromInt(e.salary).Mul(programmerBonusRate).RoundBank(0).IntPart()
	e.premium += bonus
	return bonus > 0
}

// PremMan adds the holiday bonus for men.
func (e *Employee) PremMan() bool {
	return e.premHoliday(SexMale)
}

// PremWom adds the holiday bonus for women.
func (e *Employee) PremWom() bool {
	return e.premHoliday(SexFemale)
}

func (e *Employee) premHoliday(sex Sex) bool {
	if e.sex != sex {
		return false
	}
	e.premium += HolidayBonus
	return true
}

// Index raises the salary by 7% after ten full years of tenure, 5% otherwise.
// The result is rounded half to even.
func (e *Employee) Index(now time.Time) {
	rate := regularIndexRate
	if e.TenureAt(now).Years >= IndexationTenureYears {
		rate = seniorIndexRate
	}
	e.salary = decimal.NewFromInt(e.salary).Mul(rate).RoundBank(0).IntPart()
}

// Rest reports vacation eligibility: more than five full months worked.
func (e *Employee) Rest(now time.Time) bool {
	t := e.TenureAt(now)
	return t.Years > 0 || t.Months > 5
}

// WageFund is the annual payroll cost: twelve salaries plus accrued premium per employee.
func WageFund(employees []*Employee) int64 {
	var sum int64
	for _, e := range employees {
		sum += e.salary*12 + e.premium
	}
	return sum
}

func (e *Employee) FullName() string {
	if e.middleName == nil {
		return e.lastName + " " + e.firstName
	}
	return e.lastName + " " + e.firstName + " " + *e.middleName
}

func (e *Employee) PrintEverything() string {
	return fmt.Sprintf(`Сотрудник %s:
    Должность: %s
    Дата найма: %s
    Оклад: %d
    Пол: %s
    Размер премии: %d`,
		e.FullName(),
		e.position,
		FormatDate(e.hireDate),
		e.salary,
		e.sex,
		e.premium,
	)
}
