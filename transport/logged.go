package transport

import (
	"context"
	"log/slog"
	"time"
)

// LogOption is a bitmask selecting which Bus operations NewLoggedBus logs.
type LogOption uint8

const (
	LogNone LogOption = 0
	LogRead LogOption = 1 << iota
	LogWrite
	LogAll = LogRead | LogWrite
)

// NewLoggedBus wraps inner, logging selected operations at level through
// logger. It is typically used to wrap a SocketCAN bus during bring-up and
// left unwrapped in production.
func NewLoggedBus(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts}
}

// NewLoggedBusWithFilter is NewLoggedBus restricted to frames matching
// filter, so a bring-up trace can follow a single device id on a busy bus.
// A nil filter logs every frame.
func NewLoggedBusWithFilter(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption, filter FrameFilter) Bus {
	return &loggedBus{inner: inner, logger: logger, level: level, opts: opts, filter: filter}
}

type loggedBus struct {
	inner  Bus
	logger *slog.Logger
	level  slog.Level
	opts   LogOption
	filter FrameFilter
}

// Send logs the outgoing frame and any send error when write logging is
// enabled, then forwards to the inner Bus.
func (l *loggedBus) Send(frame Frame) error {
	if l.opts&LogWrite != 0 && (l.filter == nil || l.filter(frame)) {
		l.logger.Log(context.Background(), l.level, "transport send",
			"id", frame.ID,
			"extended", frame.Extended,
			"len", int(frame.Len),
			"frame", frame.String(),
		)
	}
	err := l.inner.Send(frame)
	if l.opts&LogWrite != 0 && err != nil {
		l.logger.Log(context.Background(), slog.LevelError, "transport send error",
			"id", frame.ID,
			"error", err,
		)
	}
	return err
}

// Receive forwards to the inner Bus and logs the result when read logging is
// enabled.
func (l *loggedBus) Receive() (Frame, error) {
	f, err := l.inner.Receive()
	if l.opts&LogRead != 0 {
		if err != nil {
			l.logger.Log(context.Background(), slog.LevelError, "transport receive error", "error", err)
		} else if l.filter == nil || l.filter(f) {
			l.logger.Log(context.Background(), l.level, "transport receive",
				"id", f.ID,
				"extended", f.Extended,
				"len", int(f.Len),
				"frame", f.String(),
			)
		}
	}
	return f, err
}

// SetTimeout forwards to the inner Bus without logging.
func (l *loggedBus) SetTimeout(d time.Duration) {
	l.inner.SetTimeout(d)
}

// Close forwards to the inner Bus without logging.
func (l *loggedBus) Close() error {
	return l.inner.Close()
}
