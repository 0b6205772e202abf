package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the game logger. Output goes to LogFile when set,
// otherwise to fallback. The returned close func releases the file.
func (g Game) NewLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "dodger",
	})
	return logger, closeFn, nil
}
