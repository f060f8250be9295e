package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-roster/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = "ФИО;Должность;Дата найма;Оклад;Пол\n" +
	"Иванов Иван Иванович;Программист;15.03.2015;80000;М\n" +
	"Петрова Мария;Бухгалтер;01.02.2020;55000;Ж\n"

type cliDeps struct {
	dir     string
	input   string
	results string
}

func setupCLITest(t *testing.T) *cliDeps {
	t.Helper()
	t.Setenv("ROSTER_LOG_LEVEL", "error")
	dir := t.TempDir()
	input := filepath.Join(dir, "task.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleInput), 0o644))
	return &cliDeps{dir: dir, input: input, results: filepath.Join(dir, "results")}
}

func (d *cliDeps) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{
		"--config", filepath.Join(d.dir, "absent.yaml"),
		"--input", d.input,
		"--results", d.results,
	}
	cmd.SetArgs(append(args, base...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_Reports(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		deps := setupCLITest(t)

		out, err := deps.run(t, "show")

		require.NoError(t, err)
		assert.Contains(t, out, "Сотрудник Иванов Иван Иванович:")
		assert.Contains(t, out, "Должность: Бухгалтер")
	})

	t.Run("list", func(t *testing.T) {
		deps := setupCLITest(t)

		out, err := deps.run(t, "list")

		require.NoError(t, err)
		assert.Contains(t, out, "Дата найма")
		assert.Contains(t, out, "15.03.2015")
		assert.Contains(t, out, "55000")
	})

	t.Run("fund", func(t *testing.T) {
		deps := setupCLITest(t)

		out, err := deps.run(t, "fund")

		require.NoError(t, err)
		assert.Equal(t, "Годовой фонд оплаты труда: 1620000\n", out)
	})

	t.Run("vacation", func(t *testing.T) {
		deps := setupCLITest(t)

		out, err := deps.run(t, "vacation")

		require.NoError(t, err)
		assert.Contains(t, out, "  Иванов Иван Иванович")
		assert.Contains(t, out, "  Петрова Мария")
	})
}

func TestCLI_Export(t *testing.T) {
	t.Run("csv with operations", func(t *testing.T) {
		deps := setupCLITest(t)

		out, err := deps.run(t, "export", "--format", "csv", "--name", "march", "--apply", "programmer_bonus,women_bonus")

		require.NoError(t, err)
		path := filepath.Join(deps.results, "march.csv")
		assert.Contains(t, out, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Иванов Иван Иванович;Программист;15.03.2015;80000;М;2400")
		assert.Contains(t, string(data), "Петрова Мария;Бухгалтер;01.02.2020;55000;Ж;2000")
	})

	t.Run("unknown operation", func(t *testing.T) {
		deps := setupCLITest(t)

		_, err := deps.run(t, "export", "--name", "x", "--apply", "double_pay")

		require.Error(t, err)
		assert.Equal(t, apperror.ExitValidation, apperror.ExitCodeOf(err))
	})

	t.Run("bad file name", func(t *testing.T) {
		deps := setupCLITest(t)

		_, err := deps.run(t, "export", "--name", "../x")

		require.Error(t, err)
		assert.Equal(t, apperror.ExitValidation, apperror.ExitCodeOf(err))
	})
}

func TestCLI_BadInput(t *testing.T) {
	deps := setupCLITest(t)
	require.NoError(t, os.WriteFile(deps.input, []byte("ФИО;Должность;Дата найма;Оклад;Пол\nIvanov Ivan;Программист;15.03.2015;80000;М\n"), 0o644))

	_, err := deps.run(t, "fund")

	require.Error(t, err)
	assert.NotEqual(t, apperror.ExitInternal, apperror.ExitCodeOf(err))
}
