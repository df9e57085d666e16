package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
)

const badKey = "!BADKEY"

// NewLogrus returns a Logger that writes through a logrus entry. Passing nil
// binds to the logrus standard logger.
func NewLogrus(entry *logrus.Entry) Logger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return &logrusLogger{entry: entry}
}

type logrusLogger struct {
	entry *logrus.Entry
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Error(msg)
}

func (l *logrusLogger) With(args ...any) Logger {
	return &logrusLogger{entry: l.entry.WithFields(toFields(args))}
}

func (l *logrusLogger) with(ctx context.Context, args []any) *logrus.Entry {
	return l.entry.WithContext(ctx).WithFields(toFields(args))
}

// toFields reads args the way slog does: either a slog.Attr, or a string key
// followed by its value. A trailing value without a key lands under !BADKEY.
func toFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			fields[x.Key] = x.Value.Resolve().Any()
			args = args[1:]
		case string:
			if len(args) == 1 {
				fields[badKey] = x
				return fields
			}
			fields[x] = args[1]
			args = args[2:]
		default:
			fields[badKey] = fmt.Sprint(x)
			args = args[1:]
		}
	}
	return fields
}
