package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-roster/internal/config"
	"go-roster/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildApp(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ResultsDir = filepath.Join(dir, "results")

	t.Run("loads roster", func(t *testing.T) {
		cfg.InputPath = filepath.Join(dir, "task.csv")
		content := "ФИО;Должность;Дата найма;Оклад;Пол\n" +
			"Иванов Иван Иванович;Программист;15.03.2015;80000;М\n"
		require.NoError(t, os.WriteFile(cfg.InputPath, []byte(content), 0o644))

		a, err := BuildApp(context.Background(), cfg, zap.NewNop())

		require.NoError(t, err)
		assert.Len(t, a.Roster.Summaries(context.Background()), 1)
		assert.Same(t, cfg, a.Config)
	})

	t.Run("missing input", func(t *testing.T) {
		cfg.InputPath = filepath.Join(dir, "absent.csv")

		_, err := BuildApp(context.Background(), cfg, zap.NewNop())

		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeIO))
	})
}
