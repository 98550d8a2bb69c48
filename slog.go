package repr

import (
	"log/slog"
)

type logValue struct {
	g     *Generator
	value any
}

// Value wraps value so that structured loggers render it with g, and only
// when the record is actually handled:
//
//	logger.Debug("request", "body", g.Value(body))
func (g *Generator) Value(value any) slog.LogValuer {
	return logValue{g: g, value: value}
}

func (l logValue) LogValue() slog.Value {
	return slog.StringValue(l.g.Repr(l.value))
}
