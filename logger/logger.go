package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gorm.io/mapping/utils"
)

// LogLevel log level
type LogLevel int

const (
	// Silent silent log level
	Silent LogLevel = iota + 1
	// Error error log level
	Error
	// Warn warn log level
	Warn
	// Info info log level
	Info
)

// ParseLevel parse log level name, unknown names fall back to Warn
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return Silent
	case "error":
		return Error
	case "info":
		return Info
	default:
		return Warn
	}
}

// String returns the level name
func (level LogLevel) String() string {
	switch level {
	case Silent:
		return "silent"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	}
	return fmt.Sprintf("LogLevel(%d)", int(level))
}

// Writer log writer interface
type Writer interface {
	Printf(string, ...interface{})
}

// Config logger config
type Config struct {
	LogLevel LogLevel
	// Colorful is honoured by the default writer logger only
	Colorful bool
}

// Interface logger interface, data is a list of alternating keys and values
type Interface interface {
	LogMode(LogLevel) Interface
	Info(ctx context.Context, msg string, data ...interface{})
	Warn(ctx context.Context, msg string, data ...interface{})
	Error(ctx context.Context, msg string, data ...interface{})
}

var (
	// Discard logger will print any log to io.Discard
	Discard = New(log.New(io.Discard, "", log.LstdFlags), Config{})
	// Default default logger
	Default = New(log.New(os.Stdout, "\r\n", log.LstdFlags), Config{
		LogLevel: levelFromEnv(),
		Colorful: true,
	})
)

func levelFromEnv() LogLevel {
	return ParseLevel(os.Getenv("MAPPING_LOG_LEVEL"))
}

// Colors
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
)

// New initialize logger
func New(writer Writer, config Config) Interface {
	var (
		infoStr = "%s\n[info] "
		warnStr = "%s\n[warn] "
		errStr  = "%s\n[error] "
	)

	if config.Colorful {
		infoStr = Green + "%s\n" + Reset + Green + "[info] " + Reset
		warnStr = Magenta + "%s\n" + Reset + Yellow + "[warn] " + Reset
		errStr = Magenta + "%s\n" + Reset + Red + "[error] " + Reset
	}

	return &logger{
		Writer:  writer,
		Config:  config,
		infoStr: infoStr,
		warnStr: warnStr,
		errStr:  errStr,
	}
}

type logger struct {
	Writer
	Config
	infoStr, warnStr, errStr string
}

// LogMode log mode
func (l *logger) LogMode(level LogLevel) Interface {
	newlogger := *l
	newlogger.LogLevel = level
	return &newlogger
}

// Info print info
func (l *logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Printf(l.infoStr+"%s", utils.FileWithLineNum(), Format(msg, data...))
	}
}

// Warn print warn messages
func (l *logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Printf(l.warnStr+"%s", utils.FileWithLineNum(), Format(msg, data...))
	}
}

// Error print error messages
func (l *logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Printf(l.errStr+"%s", utils.FileWithLineNum(), Format(msg, data...))
	}
}

// Format renders msg followed by key=value pairs
func Format(msg string, data ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(msg)
	for idx := 0; idx < len(data); idx += 2 {
		sb.WriteByte(' ')
		if idx+1 < len(data) {
			fmt.Fprintf(&sb, "%v=%v", data[idx], data[idx+1])
		} else {
			fmt.Fprintf(&sb, "%v", data[idx])
		}
	}
	return sb.String()
}

func keyOf(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// badKey is used for a trailing value without a key
const badKey = "!BADKEY"
