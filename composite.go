package repr

import (
	"fmt"
	"reflect"
	"strings"
)

func (g *Generator) renderComposite(v reflect.Value, currentDepth int) string {
	if fn, ok := g.typeReprs[v.Type()]; ok {
		return fn(g, v, currentDepth)
	}
	if v.CanInterface() {
		if r, ok := v.Interface().(Representable); ok {
			return r.Representation(g, currentDepth)
		}
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(v.Type().String())
	if text, ok := defaultText(v); ok {
		b.WriteByte(' ')
		b.WriteString(g.renderText(text))
	}
	if id, ok := identity(v); ok {
		b.WriteString(" @ ")
		b.WriteString(id)
	}
	b.WriteByte('>')
	return b.String()
}

// defaultText returns the String or Error text of v. A method that panics
// yields no text.
func defaultText(v reflect.Value) (text string, ok bool) {
	if !v.CanInterface() {
		return "", false
	}
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	switch x := v.Interface().(type) {
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	}
	return "", false
}

// identity returns an opaque token for the object v refers to. Tokens are
// stable while the object is alive and distinct between live objects.
// Values that refer to nothing (plain structs) have no identity.
func identity(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%016x", mix(uint64(v.Pointer()))), true
	}
	return "", false
}

// mix is the splitmix64 finalizer. It is a bijection, so distinct addresses
// never share a token.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
