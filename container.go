package repr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

func (g *Generator) renderContainer(v reflect.Value, currentDepth int) string {
	size := v.Len()
	if size == 0 {
		return "[]"
	}
	if currentDepth >= g.maximumDepth {
		return fmt.Sprintf("[<%d>]", size)
	}

	shown := min(size, max(g.maximumElements, 0))
	parts := make([]string, 0, 2)

	if shown > 0 {
		if v.Kind() == reflect.Map {
			entries := sortedEntries(v)
			if isVector(entries) {
				values := make([]reflect.Value, shown)
				for i, entry := range entries[:shown] {
					values[i] = entry.value
				}
				parts = append(parts, g.valueList(values, currentDepth+1, listSeparator))
			} else {
				parts = append(parts, g.keyValueList(entries[:shown], currentDepth+1, listSeparator, keySeparator))
			}
		} else {
			values := make([]reflect.Value, shown)
			for i := range values {
				values[i] = v.Index(i)
			}
			parts = append(parts, g.valueList(values, currentDepth+1, listSeparator))
		}
	}

	if shown < size {
		parts = append(parts, fmt.Sprintf("<+%d>", size-shown))
	}

	return "[" + strings.Join(parts, listSeparator) + "]"
}

// isVector reports whether the keys of entries, in order, are exactly
// 0..len(entries)-1.
func isVector(entries []mapEntry) bool {
	for i, entry := range entries {
		key := unwrap(entry.key)
		if !key.IsValid() {
			return false
		}
		switch key.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if key.Int() != int64(i) {
				return false
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if key.Uint() != uint64(i) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// sortedEntries returns the entries of a map in a deterministic order, since
// Go randomizes map iteration. Entries are read with MapRange so keys that
// are not equal to themselves (NaN) keep their value.
func sortedEntries(v reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, v.Len())
	for it := v.MapRange(); it.Next(); {
		entries = append(entries, mapEntry{key: it.Key(), value: it.Value()})
	}
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		return compareKeys(a.key, b.key)
	})
	return entries
}

func compareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)
	switch {
	case !a.IsValid() && !b.IsValid():
		return 0
	case !a.IsValid():
		return -1
	case !b.IsValid():
		return 1
	}

	if a.Type() != b.Type() {
		if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
			return c
		}
		return strings.Compare(a.Type().String(), b.Type().String())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	default:
		return strings.Compare(fmt.Sprintf("%#v", a), fmt.Sprintf("%#v", b))
	}
}
