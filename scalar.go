package repr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// renderFloat uses the shortest text that round-trips, switching to an
// exponent at the same magnitudes as fmt's %v. Whole numbers get a trailing
// ".0" so they read as floats.
func renderFloat(v reflect.Value) string {
	f := v.Float()
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, v.Type().Bits())
	if math.Mod(f, 1) == 0 && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// renderOther spells v as a Go literal, lowercased.
func renderOther(v reflect.Value) string {
	var s string
	switch {
	case !v.IsValid():
		s = "nil"
	case v.Kind() == reflect.Bool:
		s = strconv.FormatBool(v.Bool())
	case v.CanInt():
		s = strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		s = strconv.FormatUint(v.Uint(), 10)
	case v.CanComplex():
		s = strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits())
	case isNil(v):
		s = "nil"
	default:
		s = fmt.Sprintf("%#v", v)
	}
	return strings.ToLower(s)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
