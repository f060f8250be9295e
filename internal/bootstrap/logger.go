package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"go-roster/internal/config"
	"go-roster/internal/shared/apperror"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InteractiveLogFile receives logs while the menu owns the terminal.
const InteractiveLogFile = "roster.log"

// NewLogger builds the root logger. When interactive is set, terminal
// outputs are redirected to InteractiveLogFile.
func NewLogger(cfg config.LogConfig, interactive bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, apperror.Validation(err, "invalid log level")
	}

	output := cfg.Output
	if interactive && (output == "stderr" || output == "stdout") {
		output = InteractiveLogFile
	}
	if output != "stderr" && output != "stdout" {
		if dir := filepath.Dir(output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, apperror.IO(err, "cannot create log directory")
			}
		}
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{output}

	logger, err := zc.Build()
	if err != nil {
		return nil, apperror.IO(err, fmt.Sprintf("cannot open log output %q", output))
	}
	return logger, nil
}
