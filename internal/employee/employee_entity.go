package employee

import (
	"time"

	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/position"
)

type Sex string

const (
	SexMale   Sex = "М"
	SexFemale Sex = "Ж"
)

// Employee is one payroll record. Fields are only reachable through the
// setters below, so a value built by New is always valid.
type Employee struct {
	lastName   string
	firstName  string
	middleName *string
	position   string
	hireDate   time.Time
	salary     int64
	sex        Sex
	premium    int64
}

// Params carries the raw values for New. MiddleName may be empty. Today
// bounds the hire date from above; the zero value means the wall clock.
type Params struct {
	LastName   string
	FirstName  string
	MiddleName string
	Position   string
	HireDate   time.Time
	Salary     int64
	Sex        string
	Premium    int64
	Today      time.Time
}

func New(p Params) (*Employee, error) {
	e := &Employee{}
	if err := e.SetLastName(p.LastName); err != nil {
		return nil, err
	}
	if err := e.SetFirstName(p.FirstName); err != nil {
		return nil, err
	}
	if err := e.SetMiddleName(p.MiddleName); err != nil {
		return nil, err
	}
	if err := e.SetPosition(p.Position); err != nil {
		return nil, err
	}
	today := p.Today
	if today.IsZero() {
		today = time.Now()
	}
	if err := e.SetHireDateAsOf(p.HireDate, today); err != nil {
		return nil, err
	}
	if err := e.SetSalary(p.Salary); err != nil {
		return nil, err
	}
	if err := e.SetSex(p.Sex); err != nil {
		return nil, err
	}
	if p.Premium < 0 {
		return nil, employeeerrors.ErrNegativePremium
	}
	e.premium = p.Premium
	return e, nil
}

func (e *Employee) LastName() string  { return e.lastName }
func (e *Employee) FirstName() string { return e.firstName }

// MiddleName returns the middle name and whether one is set.
func (e *Employee) MiddleName() (string, bool) {
	if e.middleName == nil {
		return "", false
	}
	return *e.middleName, true
}

func (e *Employee) Position() string    { return e.position }
func (e *Employee) HireDate() time.Time { return e.hireDate }
func (e *Employee) Salary() int64       { return e.salary }
func (e *Employee) Sex() Sex            { return e.sex }
func (e *Employee) Premium() int64      { return e.premium }

func (e *Employee) SetLastName(value string) error {
	name, err := normalizeName(value, 2, employeeerrors.ErrLastNameTooShort, employeeerrors.ErrLastNameAlphabet)
	if err != nil {
		return err
	}
	e.lastName = name
	return nil
}

func (e *Employee) SetFirstName(value string) error {
	name, err := normalizeName(value, 2, employeeerrors.ErrFirstNameTooShort, employeeerrors.ErrFirstNameAlphabet)
	if err != nil {
		return err
	}
	e.firstName = name
	return nil
}

// SetMiddleName clears the middle name when value is empty.
func (e *Employee) SetMiddleName(value string) error {
	if value == "" {
		e.middleName = nil
		return nil
	}
	name, err := normalizeName(value, 3, employeeerrors.ErrMiddleNameTooShort, employeeerrors.ErrMiddleNameAlphabet)
	if err != nil {
		return err
	}
	e.middleName = &name
	return nil
}

func (e *Employee) SetPosition(value string) error {
	if runeLen(value) < position.MinTitleLength {
		return employeeerrors.ErrPositionTooShort
	}
	e.position = value
	return nil
}

// SetHireDate parses a DD.MM.YYYY string and applies it.
func (e *Employee) SetHireDate(value string) error {
	date, err := ParseDate(value)
	if err != nil {
		return err
	}
	return e.SetHireDateTime(date)
}

func (e *Employee) SetHireDateTime(value time.Time) error {
	return e.SetHireDateAsOf(value, time.Now())
}

// SetHireDateAsOf applies value, rejecting dates before 01.01.2000 or after today.
func (e *Employee) SetHireDateAsOf(value, today time.Time) error {
	date := dateOnly(value)
	if date.Before(minHireDate(date.Location())) || date.After(dateOnly(today.In(date.Location()))) {
		return employeeerrors.ErrHireDateOutOfRange
	}
	e.hireDate = date
	return nil
}

func (e *Employee) SetSalary(value int64) error {
	if value < 0 {
		return employeeerrors.ErrNegativeSalary
	}
	e.salary = value
	return nil
}

func (e *Employee) SetSex(value string) error {
	sex := Sex(titleCase(value))
	if sex != SexMale && sex != SexFemale {
		return employeeerrors.ErrInvalidSex
	}
	e.sex = sex
	return nil
}
