package log

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until InitLogger is called.
var Logger = zap.NewNop()

// Config controls how InitLogger builds Logger.
type Config struct {
	Level       string // debug, info, warn, error...
	Development bool
	TimeZone    string // IANA name used for timestamps
}

func DefaultConfig() Config {
	return Config{
		Level:    "info",
		TimeZone: "UTC",
	}
}

// InitLogger replaces Logger with one built from cfg.
func InitLogger(cfg Config) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

// NewLogger builds a logger from cfg without touching Logger.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if cfg.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(location).Format(time.RFC3339))
	}
	config.EncoderConfig.EncodeLevel = levelEncoder(os.Stderr.Fd())
	return config.Build()
}

// levelEncoder only colors levels when fd is a terminal.
func levelEncoder(fd uintptr) zapcore.LevelEncoder {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return zapcore.CapitalColorLevelEncoder
	}
	return zapcore.CapitalLevelEncoder
}
