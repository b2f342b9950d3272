package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
	colorCyan  = "\x1b[36m"
	colorGreen = "\x1b[32m"
)

// цвета уровней
var levelColors = map[string]string{
	"TRACE": colorCyan,
	"DEBUG": colorGreen,
	"INFO":  "\x1b[34m",
	"WARN":  "\x1b[33m",
	"ERROR": "\x1b[31m",
	"FATAL": "\x1b[31;1m",
	"PANIC": "\x1b[35m",
}

// NewLogger returns a console logger on stdout. An unknown level falls back to info.
// NO_COLOR in the environment disables escape codes.
func NewLogger(level string) *zerolog.Logger {
	_, noColor := os.LookupEnv("NO_COLOR")
	l := initLogger(os.Stdout, level, noColor)
	return &l
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func paint(color string, noColor bool, s string) string {
	if noColor || color == "" {
		return s
	}
	return color + s + colorReset
}

func initLogger(out io.Writer, level string, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: "2006-01-02 15:04:05 MST",
		FormatLevel: func(i interface{}) string {
			name, _ := i.(string)
			name = strings.ToUpper(name)
			return paint(levelColors[name], noColor, fmt.Sprintf("| %-6s|", name))
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return paint(colorBold, noColor, fmt.Sprint(i))
		},
		FormatFieldName: func(i interface{}) string {
			return paint(colorCyan, noColor, fmt.Sprintf("%s:", i))
		},
		FormatFieldValue: func(i interface{}) string {
			return paint(colorGreen, noColor, fmt.Sprint(i))
		},
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}
