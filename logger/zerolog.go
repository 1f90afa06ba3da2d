package logger

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/mapping/utils"
)

// ZerologLogger implements Interface using zerolog
type ZerologLogger struct {
	Logger   zerolog.Logger
	LogLevel LogLevel
}

// NewZerologLogger creates a new logger using zerolog
func NewZerologLogger(logger zerolog.Logger, config Config) Interface {
	return &ZerologLogger{
		Logger:   logger,
		LogLevel: config.LogLevel,
	}
}

// NewZerologLoggerWithConfig creates a console zerolog logger writing to stdout
func NewZerologLoggerWithConfig(config Config) Interface {
	consoleWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
		w.NoColor = !config.Colorful
	})

	logger := zerolog.New(consoleWriter).
		Level(ZerologLevel(config.LogLevel)).
		With().
		Timestamp().
		Logger()

	return NewZerologLogger(logger, config)
}

// LogMode sets the log level
func (l *ZerologLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *ZerologLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.send(ctx, l.Logger.Info(), msg, data)
	}
}

// Warn logs warning messages
func (l *ZerologLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.send(ctx, l.Logger.Warn(), msg, data)
	}
}

// Error logs error messages
func (l *ZerologLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.send(ctx, l.Logger.Error(), msg, data)
	}
}

func (l *ZerologLogger) send(ctx context.Context, event *zerolog.Event, msg string, data []interface{}) {
	event = event.Str("file", utils.FileWithLineNum())
	for idx := 0; idx < len(data); idx += 2 {
		if idx+1 < len(data) {
			event = event.Interface(keyOf(data[idx]), data[idx+1])
		} else {
			event = event.Interface(badKey, data[idx])
		}
	}

	if ctx != nil {
		event = event.Ctx(ctx)
	}

	event.Msg(msg)
}

// ZerologLevel converts LogLevel to zerolog.Level
func ZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case Silent:
		return zerolog.NoLevel
	case Error:
		return zerolog.ErrorLevel
	case Warn:
		return zerolog.WarnLevel
	case Info:
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
