package logutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig - Log settings, normally read from the [log] section of a toml config file
//   - Level is one of debug, info, warn, error
//   - Format is either console or json
//   - Filename, if set, makes the logger write to a rotated file instead of stderr
//   - MaxSize is the maximum size in megabytes of a log file before it is rotated
//   - MaxDays is the number of days to keep rotated files
//   - MaxBackups is the number of rotated files to keep
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// SetDefaults - Fills in the settings left empty
func (L *LogConfig) SetDefaults() {
	if L.Level == "" {
		L.Level = "info"
	}
	if L.Format == "" {
		L.Format = "console"
	}
	if L.MaxSize == 0 {
		L.MaxSize = 512
	}
}

// NewLogger - Returns a new zap logger according to cfg
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	cfg.SetDefaults()

	var level zapcore.Level
	if err = level.UnmarshalText([]byte(cfg.Level)); err != nil {
		err = fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		return
	}

	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, cfg.getSyncer(), zap.NewAtomicLevelAt(level))
	logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))

	return
}

func (L *LogConfig) getSyncer() zapcore.WriteSyncer {
	if L.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   L.Filename,
		MaxSize:    L.MaxSize,
		MaxAge:     L.MaxDays,
		MaxBackups: L.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getLoggerEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("unsupported log format %q", format)
	}

	return
}
