package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the JSON logger shared by every binary. Output always goes to
// stderr, plus any extra syncers (usually the reopenable log file).
func NewLogger(logLevel string, syncers ...zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	outputs := make([]zapcore.WriteSyncer, 0, len(syncers)+1)
	for _, s := range syncers {
		if s != nil {
			outputs = append(outputs, s)
		}
	}
	outputs = append(outputs, zapcore.Lock(os.Stderr))

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.NewMultiWriteSyncer(outputs...), parseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}
