package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
)

// watchLog is the logger of long running commands.  DEBUG selects the
// level: unset is info, "1" or "debug" is debug, anything else parses as a
// level name.
func watchLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel(os.Getenv("DEBUG"))}))
}

func logLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "":
		return slog.LevelInfo
	case "1", "true", "debug":
		return slog.LevelDebug
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo
	}
	return l
}
