package repr

import (
	"reflect"
)

var (
	representableType = reflect.TypeFor[Representable]()
)

// Generator renders bounded representations of arbitrary values. Use
// NewGenerator or Config.NewGenerator to build one; the zero value truncates
// every string.
type Generator struct {
	maximumLength   int
	maximumDepth    int
	maximumElements int
	typeReprs       typeReprsMap
}

func NewGenerator(maximumLength, maximumDepth, maximumElements int) *Generator {
	return &Generator{
		maximumLength:   maximumLength,
		maximumDepth:    maximumDepth,
		maximumElements: maximumElements,
		typeReprs:       make(typeReprsMap),
	}
}

// MaximumLength is the number of bytes of a string shown before it is
// truncated.
func (g *Generator) MaximumLength() int { return g.maximumLength }

func (g *Generator) SetMaximumLength(maximum int) { g.maximumLength = maximum }

// MaximumDepth is the container nesting level at which containers are
// summarized as [<N>].
func (g *Generator) MaximumDepth() int { return g.maximumDepth }

func (g *Generator) SetMaximumDepth(maximum int) { g.maximumDepth = maximum }

// MaximumElements is the number of container entries shown before the
// remainder is summarized as <+K>.
func (g *Generator) MaximumElements() int { return g.maximumElements }

func (g *Generator) SetMaximumElements(maximum int) { g.maximumElements = maximum }

// Config returns the current limits.
func (g *Generator) Config() Config {
	return Config{
		MaximumLength:   g.maximumLength,
		MaximumDepth:    g.maximumDepth,
		MaximumElements: g.maximumElements,
	}
}

// Repr renders value at depth zero.
func (g *Generator) Repr(value any) string {
	return g.Generate(value, 0)
}

// Generate renders value as if it were found currentDepth containers deep.
// Representable implementations call it to render their children.
func (g *Generator) Generate(value any, currentDepth int) string {
	return g.generate(reflect.ValueOf(value), currentDepth)
}

// Classify reports which renderer Generate uses for value.
func (g *Generator) Classify(value any) Kind {
	return g.classify(unwrap(reflect.ValueOf(value)))
}

func (g *Generator) generate(v reflect.Value, currentDepth int) string {
	v = unwrap(v)
	switch g.classify(v) {
	case KindContainer:
		return g.renderContainer(v, currentDepth)
	case KindComposite:
		return g.renderComposite(v, currentDepth)
	case KindHandle:
		return renderHandle(v)
	case KindText:
		return g.renderText(v.String())
	case KindFloat:
		return renderFloat(v)
	default:
		return renderOther(v)
	}
}

func (g *Generator) classify(v reflect.Value) Kind {
	if !v.IsValid() {
		return KindOther
	}

	t := v.Type()
	switch t.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return KindOther
		}
	}

	if _, ok := g.typeReprs[t]; ok {
		return KindComposite
	}
	if v.CanInterface() && t.Implements(representableType) {
		return KindComposite
	}
	if isHandle(t) {
		return KindHandle
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindContainer
	case reflect.Struct, reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return KindComposite
	case reflect.String:
		return KindText
	case reflect.Float32, reflect.Float64:
		return KindFloat
	default:
		return KindOther
	}
}

// unwrap strips interface wrappers so the dynamic value is classified.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
