package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-roster/internal/employee"
	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/roster"
	rostererrors "go-roster/internal/roster/errors"
	"go-roster/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoster = `ФИО;Должность;Дата найма;Оклад;Пол
Иванов Иван Иванович;Программист;15.03.2015;80 000;М
петрова мария;Бухгалтер;01.02.2021;55000;ж
Сидоров Пётр Петрович;Ведущий программист;20.05.2010;120` + "\u00a0" + `000;м
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "task.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employees, err := roster.Import(strings.NewReader(sampleRoster))
		require.NoError(t, err)
		require.Len(t, employees, 3)

		first := employees[0]
		assert.Equal(t, "Иванов Иван Иванович", first.FullName())
		assert.Equal(t, "Программист", first.Position())
		assert.Equal(t, time.Date(2015, time.March, 15, 0, 0, 0, 0, time.Local), first.HireDate())
		assert.Equal(t, int64(80000), first.Salary())
		assert.Equal(t, employee.SexMale, first.Sex())
		assert.Equal(t, int64(0), first.Premium())

		second := employees[1]
		assert.Equal(t, "Петрова Мария", second.FullName())
		_, ok := second.MiddleName()
		assert.False(t, ok)
		assert.Equal(t, employee.SexFemale, second.Sex())

		assert.Equal(t, int64(120000), employees[2].Salary())
	})

	t.Run("premium column", func(t *testing.T) {
		in := "ФИО;Должность;Дата найма;Оклад;Пол;Размер премии\n" +
			"Иванов Иван;Программист;15.03.2015;80000;М;2400\n" +
			"Петров Пётр;Инженер;15.03.2016;70000;М;\n"

		employees, err := roster.Import(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, int64(2400), employees[0].Premium())
		assert.Equal(t, int64(0), employees[1].Premium())
	})

	t.Run("header only", func(t *testing.T) {
		employees, err := roster.Import(strings.NewReader("ФИО;Должность;Дата найма;Оклад;Пол\n"))
		require.NoError(t, err)
		assert.Empty(t, employees)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := roster.Import(strings.NewReader(""))
		assert.ErrorIs(t, err, rostererrors.ErrMissingHeader)
	})

	t.Run("unexpected header width", func(t *testing.T) {
		_, err := roster.Import(strings.NewReader("ФИО;Должность;Дата найма;Оклад\nИванов Иван;Программист;15.03.2015;80000\n"))
		assert.ErrorIs(t, err, rostererrors.ErrUnexpectedColumns)
		assert.True(t, apperror.IsCode(err, apperror.CodeParse))
	})

	errCases := []struct {
		name string
		row  string
		want error
	}{
		{"one name token", "Иванов;Программист;15.03.2015;80000;М", rostererrors.ErrInvalidFullName},
		{"four name tokens", "Иванов Иван Иванович Младший;Программист;15.03.2015;80000;М", rostererrors.ErrInvalidFullName},
		{"salary not a number", "Иванов Иван;Программист;15.03.2015;восемьдесят;М", rostererrors.ErrInvalidSalary},
		{"bad date", "Иванов Иван;Программист;2015-03-15;80000;М", employeeerrors.ErrInvalidHireDateFormat},
		{"future date", "Иванов Иван;Программист;01.01.2999;80000;М", employeeerrors.ErrHireDateOutOfRange},
		{"latin name", "Ivanov Ivan;Программист;15.03.2015;80000;М", employeeerrors.ErrLastNameAlphabet},
		{"bad sex", "Иванов Иван;Программист;15.03.2015;80000;X", employeeerrors.ErrInvalidSex},
		{"negative salary", "Иванов Иван;Программист;15.03.2015;-5;М", employeeerrors.ErrNegativeSalary},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			in := "ФИО;Должность;Дата найма;Оклад;Пол\n" + tt.row + "\n"

			employees, err := roster.Import(strings.NewReader(in))

			assert.Nil(t, employees)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, apperror.IsCode(err, apperror.CodeParse))
			assert.Contains(t, err.Error(), "line 2")
		})
	}

	t.Run("line number counts blank lines", func(t *testing.T) {
		in := "ФИО;Должность;Дата найма;Оклад;Пол\n" +
			"\n" +
			"Иванов Иван;Программист;15.03.2015;80000;М\n" +
			"\n" +
			"Петрова М;Бухгалтер;01.02.2020;55000;Ж\n"

		_, err := roster.Import(strings.NewReader(in))

		require.Error(t, err)
		assert.ErrorIs(t, err, employeeerrors.ErrFirstNameTooShort)
		assert.Contains(t, err.Error(), "line 5")
	})

	t.Run("hire date bounded by clock", func(t *testing.T) {
		clock := func() time.Time { return time.Date(2021, time.January, 31, 0, 0, 0, 0, time.Local) }

		_, err := roster.Import(strings.NewReader(sampleRoster), roster.WithClock(clock))

		assert.ErrorIs(t, err, employeeerrors.ErrHireDateOutOfRange)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("row width mismatch", func(t *testing.T) {
		in := "ФИО;Должность;Дата найма;Оклад;Пол\nИванов Иван;Программист;15.03.2015;80000\n"

		_, err := roster.Import(strings.NewReader(in))
		assert.True(t, apperror.IsCode(err, apperror.CodeParse))
	})
}

func TestImportFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employees, err := roster.ImportFile(writeFile(t, sampleRoster))
		require.NoError(t, err)
		assert.Len(t, employees, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := roster.ImportFile(filepath.Join(t.TempDir(), "missing.csv"))
		assert.True(t, apperror.IsCode(err, apperror.CodeIO))
	})
}
