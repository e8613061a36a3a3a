package logger_adapter

import (
	"fmt"

	"github.com/MaryChris21/Estify/internal/core/port"
)

// MultiLoggerAdapter fans every record out to all configured sinks.
type MultiLoggerAdapter struct {
	sinks []port.LoggerPort
}

// NewMultiLoggerAdapter skips nil sinks, so optional sinks can be passed unconditionally.
// With a single remaining sink that sink is returned as is.
func NewMultiLoggerAdapter(sinks ...port.LoggerPort) (port.LoggerPort, error) {
	active := make([]port.LoggerPort, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}

	switch len(active) {
	case 0:
		return nil, fmt.Errorf("multilogger: at least one logger is required")
	case 1:
		return active[0], nil
	}
	return &MultiLoggerAdapter{sinks: active}, nil
}

func (m *MultiLoggerAdapter) each(write func(port.LoggerPort)) {
	for _, s := range m.sinks {
		write(s)
	}
}

func (m *MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	m.each(func(s port.LoggerPort) { s.Info(msg, fields) })
}

func (m *MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	m.each(func(s port.LoggerPort) { s.Warn(msg, fields) })
}

func (m *MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	m.each(func(s port.LoggerPort) { s.Error(msg, err, fields) })
}

func (m *MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	m.each(func(s port.LoggerPort) { s.Debug(msg, fields) })
}

func (m *MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	scoped := &MultiLoggerAdapter{sinks: make([]port.LoggerPort, 0, len(m.sinks))}
	m.each(func(s port.LoggerPort) { scoped.sinks = append(scoped.sinks, s.WithFields(fields)) })
	return scoped
}
