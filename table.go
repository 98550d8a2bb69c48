package repr

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	reprTag = "repr"
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

type renderContext int

const (
	contextField renderContext = iota
	contextColumn
)

// WriteTable writes value as an aligned table of representations:
//
//   - a struct gets one "Name : repr" row per exported field,
//   - a map gets one "key : repr" row per entry,
//   - a slice or array of structs gets a header of field names and one row
//     per element.
//
// Fields tagged `repr:"-"` are never shown, `repr:"skip-field"` and
// `repr:"skip-column"` hide a field in one layout only, `repr:"omitempty"`
// hides zero values in field tables and `repr:"inline"` lists every element
// of a slice field without brackets. Any other value is written as a single
// line.
func (g *Generator) WriteTable(w io.Writer, value any) error {
	out := &errWriter{w: w}

	orig := unwrap(reflect.ValueOf(value))
	v := orig
	for v.IsValid() && v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		if g.rendersItself(v.Type()) {
			break
		}
		v = v.Elem()
	}

	written := false
	switch {
	case !v.IsValid() || g.rendersItself(v.Type()):
	case v.Kind() == reflect.Struct:
		written = writeFieldTable(out, g.fieldRows(v))
	case v.Kind() == reflect.Map:
		written = writeFieldTable(out, g.entryRows(v))
	case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
		written = g.writeStructList(out, v)
	}

	if !written {
		fmt.Fprintln(out, g.generate(orig, 0))
	}

	if out.err != nil {
		return fmt.Errorf("error writing representation: %w", out.err)
	}
	return nil
}

// rendersItself reports whether values of t have a rendering of their own,
// in which case their fields are not listed.
func (g *Generator) rendersItself(t reflect.Type) bool {
	if _, ok := g.typeReprs[t]; ok {
		return true
	}
	return t.Implements(representableType) || isHandle(t)
}

func writeFieldTable(w io.Writer, rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}

	table := tablewriter.NewWriter(w)
	table.SetNoWhiteSpace(true)
	table.SetBorder(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	return true
}

func (g *Generator) fieldRows(v reflect.Value) [][]string {
	t := v.Type()
	rows := make([][]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		if shouldDisplayField(field, contextField) && shouldDisplayValue(field, value) {
			rows = append(rows, []string{field.Name + " : ", g.renderCell(field, value)})
		}
	}
	return rows
}

func (g *Generator) entryRows(v reflect.Value) [][]string {
	entries := sortedEntries(v)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{g.generate(entry.key, 1) + " : ", g.generate(entry.value, 1)})
	}
	return rows
}

// structListElem returns the struct type listed by a slice or array type, if
// its elements are plain structs or pointers to them.
func (g *Generator) structListElem(t reflect.Type) (reflect.Type, bool) {
	elem := t.Elem()
	for elem.Kind() == reflect.Ptr {
		if g.rendersItself(elem) {
			return nil, false
		}
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct || g.rendersItself(elem) || elem.Implements(stringerType) {
		return nil, false
	}
	return elem, true
}

func (g *Generator) writeStructList(w io.Writer, v reflect.Value) bool {
	tpe, ok := g.structListElem(v.Type())
	if !ok || v.Len() == 0 {
		return false
	}

	cols := make([]int, 0, tpe.NumField())
	headers := make([]string, 0, tpe.NumField())
	for i := 0; i < tpe.NumField(); i++ {
		field := tpe.Field(i)
		if shouldDisplayField(field, contextColumn) {
			cols = append(cols, i)
			headers = append(headers, field.Name+"  ")
		}
	}
	if len(cols) == 0 {
		return false
	}

	table := tablewriter.NewWriter(w)
	table.SetNoWhiteSpace(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetHeader(headers)

	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		for item.Kind() == reflect.Ptr && !item.IsNil() {
			item = item.Elem()
		}

		row := make([]string, len(cols))
		for j, col := range cols {
			if item.Kind() != reflect.Struct {
				row[j] = "nil   "
				continue
			}
			row[j] = g.renderCell(tpe.Field(col), item.Field(col)) + "   "
		}
		table.Append(row)
	}

	table.Render()
	return true
}

// renderCell renders a field one level below the table itself.
func (g *Generator) renderCell(field reflect.StructField, v reflect.Value) string {
	if strings.Contains(field.Tag.Get(reprTag), "inline") && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
		values := make([]reflect.Value, v.Len())
		for i := range values {
			values[i] = v.Index(i)
		}
		return g.valueList(values, 1, listSeparator)
	}
	return g.generate(v, 1)
}

func shouldDisplayField(field reflect.StructField, context renderContext) bool {
	// Check repr tag
	tag := field.Tag.Get(reprTag)
	if tag == "-" {
		return false
	}
	if context == contextColumn {
		if strings.Contains(tag, "skip-column") {
			return false
		}
	} else if context == contextField {
		if strings.Contains(tag, "skip-field") {
			return false
		}
	}

	// Fallback to Go visibility rule
	return field.IsExported()
}

func shouldDisplayValue(field reflect.StructField, v reflect.Value) bool {
	if strings.Contains(field.Tag.Get(reprTag), "omitempty") {
		return !v.IsZero()
	}
	return true
}

// errWriter keeps the first write error, which tablewriter does not report.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
