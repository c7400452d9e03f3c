package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("invalid log level '%v': %w", name, err)
	}

	return level, nil
}

// Builds the CLI logger: human readable logs on stderr, plus JSON logs to path when not empty.
// The returned closer is nil when no log file was opened.
func newLogger(levelName string, path string) (*slog.Logger, io.Closer, error) {
	level, err := parseLogLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer

	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		// The file gets every record, stderr only the configured level
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
