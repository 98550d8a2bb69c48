package repr

import (
	"reflect"
)

// RegisterType makes g render every value whose dynamic type is exactly T
// with fn, as if T implemented Representable. T should be a concrete type.
func RegisterType[T any](g *Generator, fn RepresentFn[T]) {
	if g.typeReprs == nil {
		g.typeReprs = make(typeReprsMap)
	}
	t := reflect.TypeFor[T]()
	g.typeReprs[t] = func(g *Generator, v reflect.Value, currentDepth int) string {
		return fn(g, v.Interface().(T), currentDepth)
	}
}
