// Package logging настраивает вывод slog в терминал
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler возвращает tint-обработчик, пишущий в w.
// Цвет включается, только если w терминал и noColor не задан.
func NewTerminalHandler(w io.Writer, level slog.Leveler, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor || !IsTerminal(w),
	})
}

// NewLogger создаёт логгер с NewTerminalHandler
func NewLogger(w io.Writer, level slog.Leveler, noColor bool) *slog.Logger {
	return slog.New(NewTerminalHandler(w, level, noColor))
}

// IsTerminal сообщает, является ли w терминалом
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discard возвращает логгер, который ничего не пишет
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
