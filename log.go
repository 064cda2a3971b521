package filefilter

import "log/slog"

var logger = slog.Default()

// SetLogger sets the logger used by the package, nil is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
