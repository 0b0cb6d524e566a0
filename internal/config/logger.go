package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a development-style console logger writing to w.
// Nothing in the CLI logs above debug, so the default warn level keeps stderr
// down to the single error line.
func NewLogger(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.AddCaller()).Sugar()
}
