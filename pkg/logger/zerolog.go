package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerolog returns a Logger backed by zerolog writing to w.
// A nil writer defaults to stdout.
func NewZerolog(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return &zerologLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

func (l *zerologLogger) Error(msg string, args ...any) {
	l.emit(l.logger.Error(), msg, args)
}

func (l *zerologLogger) Warn(msg string, args ...any) {
	l.emit(l.logger.Warn(), msg, args)
}

func (l *zerologLogger) Info(msg string, args ...any) {
	l.emit(l.logger.Info(), msg, args)
}

func (l *zerologLogger) Debug(msg string, args ...any) {
	l.emit(l.logger.Debug(), msg, args)
}

// emit attaches slog-style key/value pairs as zerolog fields.
// A trailing key with no value is logged under the "arg" field.
func (l *zerologLogger) emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}
	if len(args)%2 == 1 {
		ev = ev.Interface("arg", args[len(args)-1])
	}
	ev.Msg(msg)
}
