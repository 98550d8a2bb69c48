// Package repr renders short, bounded, human-readable representations of
// arbitrary values for logs, error messages and debugging output.
//
// Strings are quoted, escaped and cut at a maximum length, containers are
// summarized past a maximum depth and element count, and values may take
// over their own rendering by implementing Representable.
package repr

import (
	"fmt"
	"io"
	"reflect"
	"sync/atomic"
)

// Representable is implemented by values that render themselves. The
// generator and depth are passed so children can be rendered with
// g.Generate(child, currentDepth+1).
type Representable interface {
	Representation(g *Generator, currentDepth int) string
}

type RepresentFn[T any] func(g *Generator, value T, currentDepth int) string

type typeReprsMap map[reflect.Type]func(*Generator, reflect.Value, int) string

var installed atomic.Pointer[Generator]

// Default returns the shared generator used by Repr, creating one with the
// default configuration on first use.
func Default() *Generator {
	for {
		if g := installed.Load(); g != nil {
			return g
		}
		installed.CompareAndSwap(nil, DefaultConfig().NewGenerator())
	}
}

// Install replaces the shared generator. Install(nil) restores the lazily
// created default.
func Install(g *Generator) {
	installed.Store(g)
}

func Repr(value any) string {
	return Default().Repr(value)
}

func Write(w io.Writer, value any) error {
	if _, err := io.WriteString(w, Repr(value)); err != nil {
		return fmt.Errorf("error writing representation: %w", err)
	}
	return nil
}
