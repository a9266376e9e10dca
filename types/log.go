package types

import (
	"log/slog"
)

// SlogType wraps a type as a slog.LogValuer so that it is only rendered
// if the record is emitted
func SlogType(t PolyType) slog.LogValuer { return typeLogValuer{t} }

// SlogExpr is SlogType for expressions
func SlogExpr(e Expression) slog.LogValuer { return exprLogValuer{e} }

func SlogSubs(s Substitution) slog.LogValuer { return subsLogValuer{s} }

type typeLogValuer struct{ PolyType }
type exprLogValuer struct{ Expression }
type subsLogValuer struct{ Substitution }

func (l typeLogValuer) LogValue() slog.Value {
	if l.PolyType == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(l.PolyType.String())
}

func (l exprLogValuer) LogValue() slog.Value {
	if l.Expression == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(l.Expression.String())
}

func (l subsLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", l.Substitution.Len()),
		slog.String("str", l.Substitution.String()),
	)
}
