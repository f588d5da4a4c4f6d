// Package render converts arbitrary values into the textual form used
// in block bodies: scalars inline, containers as an indented bracketed
// block or as an ASCII tree with branch connectors.
package render

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/willibrandon/blocklog/core"
	"github.com/willibrandon/blocklog/selflog"
)

// Style selects how containers are rendered.
type Style int

const (
	// Bracketed renders containers as indented `[key] = value` lines
	// wrapped in braces.
	Bracketed Style = iota

	// Tree renders containers as an ASCII tree with ├─/└─ connectors.
	Tree
)

// String returns the configuration name of the style.
func (s Style) String() string {
	if s == Tree {
		return "tree"
	}
	return "bracketed"
}

// Renderer converts values to text. It is immutable after construction
// and safe for concurrent use; rendering never mutates its input.
type Renderer struct {
	style      Style
	tabWidth   int
	rootPrefix string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle selects the container rendering style.
func WithStyle(style Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// WithTabWidth sets the spaces per indent level in the bracketed style.
func WithTabWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.tabWidth = width
		}
	}
}

// WithRootPrefix sets the marker prepended to qualified names.
func WithRootPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.rootPrefix = prefix
	}
}

// New creates a Renderer. The default renders containers in the
// bracketed style with a four-space indent and no root prefix.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		style:    Bracketed,
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the textual form of v. Strings are double-quoted
// verbatim, numbers and booleans take their canonical decimal form,
// containers render per the configured style, values exposing a
// qualified name render as that name, and everything else falls back
// to a generic type-name string.
func (r *Renderer) Render(v any) string {
	return r.render(v, 1)
}

// entry is one key/value pair of a lowered container.
type entry struct {
	key   any
	value any
}

func (r *Renderer) render(v any, depth int) string {
	if entries, ok := r.entriesOf(v); ok {
		if r.style == Tree {
			return r.renderTree(entries, "")
		}
		return r.renderBracketed(entries, depth)
	}
	return r.renderScalar(v)
}

// entriesOf lowers container values to an ordered entry list. Dicts keep
// insertion order; native maps are ordered by rendered key so output is
// deterministic; slices and arrays index from 1.
func (r *Renderer) entriesOf(v any) ([]entry, bool) {
	if d, ok := v.(*core.Dict); ok {
		entries := make([]entry, 0, d.Len())
		d.Each(func(key, value any) {
			entries = append(entries, entry{key, value})
		})
		return entries, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{iter.Key().Interface(), iter.Value().Interface()})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return r.renderScalar(entries[i].key) < r.renderScalar(entries[j].key)
		})
		return entries, true
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// Byte blobs are opaque, not element lists.
			return nil, false
		}
		entries := make([]entry, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			entries = append(entries, entry{i + 1, rv.Index(i).Interface()})
		}
		return entries, true
	}
	return nil, false
}

// renderBracketed emits one `[key] = value` line per entry at
// tabWidth*depth indent, joined with ",\n" and wrapped in braces with
// the closing brace at the parent depth.
func (r *Renderer) renderBracketed(entries []entry, depth int) string {
	if len(entries) == 0 {
		return "{}"
	}

	pad := strings.Repeat(" ", r.tabWidth*depth)
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = pad + "[" + r.renderScalar(e.key) + "] = " + r.render(e.value, depth+1)
	}

	closePad := strings.Repeat(" ", r.tabWidth*(depth-1))
	return "{\n" + strings.Join(lines, ",\n") + "\n" + closePad + "}"
}

// renderTree emits one connector line per entry; the last entry uses
// └─, all others ├─. Nested containers emit a `[key]:` header line and
// recurse with the indent extended by │ or blanks depending on whether
// more siblings follow. An empty container yields no lines.
func (r *Renderer) renderTree(entries []entry, indent string) string {
	size := len(entries)
	lines := make([]string, 0, size)
	for i, e := range entries {
		connector, childPad := "├─ ", "│  "
		if i == size-1 {
			connector, childPad = "└─ ", "   "
		}

		if children, ok := r.entriesOf(e.value); ok {
			lines = append(lines, indent+connector+"["+r.renderScalar(e.key)+"]:")
			if sub := r.renderTree(children, indent+childPad); sub != "" {
				lines = append(lines, sub)
			}
		} else {
			lines = append(lines, indent+connector+"["+r.renderScalar(e.key)+"]: "+r.renderScalar(e.value))
		}
	}
	return strings.Join(lines, "\n")
}

// renderScalar handles every non-container value. It doubles as the key
// stringification rule: strings are quoted, everything else takes its
// scalar form or the type-name fallback.
func (r *Renderer) renderScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return `"` + val + `"`
	case bool:
		return strconv.FormatBool(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%v", val)
	}

	if qn, ok := v.(core.QualifiedNamer); ok {
		return r.rootPrefix + qn.QualifiedName()
	}

	return r.renderFallback(v)
}

// renderFallback resolves named scalar kinds through reflection and
// degrades everything else to a type-name string. A recovered panic
// also degrades to the type name so rendering can never fail a call.
func (r *Renderer) renderFallback(v any) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[render] recovered panic rendering %T: %v", v, rec)
			}
			out = fmt.Sprintf("%T", v)
		}
	}()

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return `"` + rv.String() + `"`
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%T", v)
	}
}
