package scribe

import (
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// NewLogger builds the console logger the CLI hands to the library. Level is
// one of trace, debug, info, warn, error, fatal; anything else means info.
func NewLogger(level string) *glog.BaseLogger {
	return glog.NewLogger(
		glog.WithLevel(normalizeLevel(level)),
		glog.WithLoggerTypeConsole(),
	)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return glog.Info
	}
}
