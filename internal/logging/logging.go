// Package logging configures the global zerolog logger.
//
// The server logs to stderr. The terminal client owns the screen, so it
// writes JSON lines to a rotating file instead, or nowhere at all.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLevel parses level and applies it globally; unknown levels keep info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Console points the global logger at stderr, pretty-printed on a TTY.
func Console(level string) {
	SetLevel(level)
	var w io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// File points the global logger at a size-rotated file. An empty path
// discards all output. The returned closer flushes the file.
func File(path, level string) io.Closer {
	SetLevel(level)
	if path == "" {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil)
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.Logger = zerolog.New(lj).With().Timestamp().Logger()
	return lj
}
