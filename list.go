package repr

import (
	"reflect"
	"strings"
)

const (
	listSeparator = ", "
	keySeparator  = " => "
)

// Entry is a key and value rendered by KeyValueList.
type Entry struct {
	Key   any
	Value any
}

type mapEntry struct {
	key, value reflect.Value
}

// ValueList renders every value at currentDepth and joins them with
// separator. It applies no element limit and adds no brackets, which is
// what Representable implementations need to lay out their own children:
//
//	func (s Stack) Representation(g *repr.Generator, depth int) string {
//		return "<stack " + g.ValueList(s.items, depth+1, " | ") + ">"
//	}
func (g *Generator) ValueList(values []any, currentDepth int, separator string) string {
	rvs := make([]reflect.Value, len(values))
	for i, value := range values {
		rvs[i] = reflect.ValueOf(value)
	}
	return g.valueList(rvs, currentDepth, separator)
}

// KeyValueList renders every entry as key, keySeparator, value, with keys
// and values both at currentDepth, and joins the entries with separator.
func (g *Generator) KeyValueList(entries []Entry, currentDepth int, separator, keySeparator string) string {
	rvs := make([]mapEntry, len(entries))
	for i, entry := range entries {
		rvs[i] = mapEntry{key: reflect.ValueOf(entry.Key), value: reflect.ValueOf(entry.Value)}
	}
	return g.keyValueList(rvs, currentDepth, separator, keySeparator)
}

func (g *Generator) valueList(values []reflect.Value, currentDepth int, separator string) string {
	elements := make([]string, len(values))
	for i, value := range values {
		elements[i] = g.generate(value, currentDepth)
	}
	return strings.Join(elements, separator)
}

func (g *Generator) keyValueList(entries []mapEntry, currentDepth int, separator, keySeparator string) string {
	elements := make([]string, len(entries))
	for i, entry := range entries {
		elements[i] = g.generate(entry.key, currentDepth) + keySeparator + g.generate(entry.value, currentDepth)
	}
	return strings.Join(elements, separator)
}
