package repr

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identityPattern = `[0-9a-f]{16}`

type point struct {
	X, Y int
}

type temperature struct {
	celsius float64
}

func (t temperature) String() string { return fmt.Sprintf("%.1fC", t.celsius) }

type explosive struct{}

func (explosive) String() string { panic("boom") }

// pair renders itself and its children one level deeper.
type pair struct {
	left, right any
}

func (p pair) Representation(g *Generator, currentDepth int) string {
	return "(" + g.Generate(p.left, currentDepth+1) + " . " + g.Generate(p.right, currentDepth+1) + ")"
}

// stack lays out its children with the list helpers.
type stack struct {
	items []any
	attrs []Entry
}

func (s stack) Representation(g *Generator, currentDepth int) string {
	return "<stack " + g.ValueList(s.items, currentDepth+1, " | ") + " {" + g.KeyValueList(s.attrs, currentDepth+1, "; ", ": ") + "}>"
}

type named []string

func (n named) Representation(*Generator, int) string { return fmt.Sprintf("<%d names>", len(n)) }

func TestStruct(t *testing.T) {
	g := defaultGenerator()
	AssertGenerate(t, g, point{1, 2}, "<repr.point>")
	AssertGenerate(t, g, struct{}{}, "<struct {}>")
	AssertGenerate(t, g, temperature{21.5}, `<repr.temperature "21.5C">`)
}

func TestPointer(t *testing.T) {
	g := defaultGenerator()
	p := &point{1, 2}
	assert.Regexp(t, `^<\*repr\.point @ `+identityPattern+`>$`, g.Repr(p))

	temp := &temperature{-3}
	assert.Regexp(t, `^<\*repr\.temperature "-3\.0C" @ `+identityPattern+`>$`, g.Repr(temp))

	n := 5
	assert.Regexp(t, `^<\*int @ `+identityPattern+`>$`, g.Repr(&n))
}

func TestErrorText(t *testing.T) {
	g := defaultGenerator()
	err := errors.New("it failed")
	assert.Regexp(t, `^<\*errors\.errorString "it failed" @ `+identityPattern+`>$`, g.Repr(err))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Regexp(t, `^<\*fmt\.wrapError "outer: it failed" @ `+identityPattern+`>$`, g.Repr(wrapped))
}

func TestDefaultTextIsTruncated(t *testing.T) {
	g := NewGenerator(4, 3, 3)
	AssertGenerate(t, g, temperature{21.5}, `<repr.temperature "21.5...>`)
}

func TestPanickingStringer(t *testing.T) {
	g := defaultGenerator()
	AssertGenerate(t, g, explosive{}, "<repr.explosive>")
}

func TestIdentity(t *testing.T) {
	g := defaultGenerator()
	a, b := &point{1, 2}, &point{1, 2}

	re := regexp.MustCompile(`@ (` + identityPattern + `)>$`)
	idA := re.FindStringSubmatch(g.Repr(a))
	idB := re.FindStringSubmatch(g.Repr(b))
	require.Len(t, idA, 2)
	require.Len(t, idB, 2)

	assert.NotEqual(t, idA[1], idB[1])
	assert.Equal(t, g.Repr(a), g.Repr(a))
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestFuncAndChan(t *testing.T) {
	g := defaultGenerator()
	assert.Regexp(t, `^<func\(\) @ `+identityPattern+`>$`, g.Repr(func() {}))
	assert.Regexp(t, `^<chan int @ `+identityPattern+`>$`, g.Repr(make(chan int)))
}

func TestRepresentable(t *testing.T) {
	g := defaultGenerator()
	AssertGenerate(t, g, pair{1, "a"}, `(1 . "a")`)
	AssertGenerate(t, g, &pair{1, nil}, "(1 . nil)")
	AssertGenerate(t, g, []any{pair{[]int{1}, 2.0}}, "[([1] . 2.0)]")
	AssertGenerate(t, NewGenerator(50, 2, 3), []any{pair{[]int{1}, 2.0}}, "[([<1>] . 2.0)]")
	AssertGenerate(t, g, named{"a", "b"}, "<2 names>")
	AssertGenerate(t, g, map[string]named{"x": nil}, `["x" => <0 names>]`)
}

func TestRegisterType(t *testing.T) {
	g := defaultGenerator()
	AssertGenerate(t, g, time.Second, "1000000000")

	RegisterType(g, func(_ *Generator, d time.Duration, _ int) string {
		return "<duration " + d.String() + ">"
	})
	RegisterType(g, func(g *Generator, p point, currentDepth int) string {
		return fmt.Sprintf("<point %s %s>", g.Generate(p.X, currentDepth+1), g.Generate(p.Y, currentDepth+1))
	})

	AssertGenerate(t, g, time.Second, "<duration 1s>")
	AssertGenerate(t, g, []time.Duration{time.Minute}, "[<duration 1m0s>]")
	AssertGenerate(t, g, point{3, 4}, "<point 3 4>")
	assert.Equal(t, KindComposite, g.Classify(time.Second))

	// Registration is exact: pointers keep the default rendering.
	assert.Regexp(t, `^<\*repr\.point @ `+identityPattern+`>$`, g.Repr(&point{}))

	// Other generators are unaffected.
	AssertGenerate(t, defaultGenerator(), time.Second, "1000000000")
}

func TestRegisterTypeOnZeroGenerator(t *testing.T) {
	var g Generator
	g.SetMaximumLength(10)
	RegisterType(&g, func(*Generator, point, int) string { return "<p>" })
	AssertGenerate(t, &g, point{}, "<p>")
}

func TestRepresentableListHelpers(t *testing.T) {
	g := defaultGenerator()
	s := stack{
		items: []any{1, "two", []int{3}},
		attrs: []Entry{{"size", 3}, {1.5, nil}},
	}
	AssertGenerate(t, g, s, `<stack 1 | "two" | [3] {"size": 3; 1.5: nil}>`)

	// Children are rendered at the depth the delegate asks for.
	AssertGenerate(t, NewGenerator(50, 1, 3), s, `<stack 1 | "two" | [<1>] {"size": 3; 1.5: nil}>`)
	AssertGenerate(t, g, stack{}, "<stack  {}>")
}

func TestListHelpers(t *testing.T) {
	g := defaultGenerator()
	assert.Equal(t, `1, "a", nil`, g.ValueList([]any{1, "a", nil}, 0, ", "))
	assert.Equal(t, "", g.ValueList(nil, 0, ", "))
	assert.Equal(t, "[1, 2, 3, 4]", "["+g.ValueList([]any{1, 2, 3, 4}, 1, ", ")+"]")
	assert.Equal(t, "[<2>]", g.ValueList([]any{[]int{1, 2}}, 3, ", "))
	assert.Equal(t, `"a" => 1, "b" => [1]`, g.KeyValueList([]Entry{{"a", 1}, {"b", []int{1}}}, 1, ", ", " => "))
}
