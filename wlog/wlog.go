package wlog

import "github.com/astaxie/beego/logs"

type Level uint8

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// Logger is the logging collaborator the request core reports decode
// failures to. Implementations must be safe for use from multiple
// connection workers.
type Logger interface {
	Log(level Level, message string, cause error)
}

type beeLogger struct {
	inner *logs.BeeLogger
}

// New returns a console-backed leveled logger.
func New() Logger {
	inner := logs.NewLogger(1000)
	_ = inner.SetLogger(logs.AdapterConsole)

	return &beeLogger{inner: inner}
}

func (b *beeLogger) Log(level Level, message string, cause error) {
	if cause != nil {
		message += ": " + cause.Error()
	}

	switch level {
	case LevelError:
		b.inner.Error("%s", message)
	case LevelWarning:
		b.inner.Warn("%s", message)
	case LevelInfo:
		b.inner.Info("%s", message)
	default:
		b.inner.Debug("%s", message)
	}
}

type nop struct{}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return nop{}
}

func (nop) Log(Level, string, error) {}
