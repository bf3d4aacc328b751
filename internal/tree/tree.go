// Package tree renders JSON values as an indented outline, one node per
// line, in the shape of a collapsible tree view.
package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/jsonsmith/internal/formatter"
	"github.com/mcncl/jsonsmith/internal/models"
)

// RootName is the name and path of the top-level node.
const RootName = "root"

// Options control rendering.
type Options struct {
	// MaxDepth collapses containers nested deeper than MaxDepth levels
	// below the root. Zero means unlimited.
	MaxDepth int
	// ShowPaths appends each node's path to its line.
	ShowPaths bool
}

// Render returns the outline of v. Scalars print as "name: value" with
// strings quoted; containers print as "name: Object(n)" or "name:
// Array(n)" followed by their children indented by two spaces.
func Render(v models.Value, opts Options) string {
	var sb strings.Builder
	render(&sb, v, RootName, RootName, 0, opts)
	return strings.TrimSuffix(sb.String(), "\n")
}

func render(sb *strings.Builder, v models.Value, name, path string, depth int, opts Options) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(Label(v))
	if opts.ShowPaths {
		fmt.Fprintf(sb, "  (%s)", path)
	}
	sb.WriteByte('\n')

	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return
	}
	switch v := v.(type) {
	case models.Object:
		for _, m := range v {
			render(sb, m.Value, m.Key, path+"."+m.Key, depth+1, opts)
		}
	case models.Array:
		for i, elem := range v {
			idx := strconv.Itoa(i)
			render(sb, elem, idx, path+"."+idx, depth+1, opts)
		}
	}
}

// Label returns the text shown after a node's name.
func Label(v models.Value) string {
	switch v := v.(type) {
	case nil, models.Null:
		return "null"
	case models.Bool:
		return strconv.FormatBool(bool(v))
	case models.Number:
		return formatter.Encode(v, 0)
	case models.String:
		return `"` + string(v) + `"`
	case models.Array:
		return fmt.Sprintf("Array(%d)", len(v))
	case models.Object:
		return fmt.Sprintf("Object(%d)", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Paths lists the path of every node in document order, starting with the
// root.
func Paths(v models.Value) []string {
	paths := []string{RootName}
	return collect(paths, v, RootName)
}

func collect(paths []string, v models.Value, path string) []string {
	switch v := v.(type) {
	case models.Object:
		for _, m := range v {
			p := path + "." + m.Key
			paths = collect(append(paths, p), m.Value, p)
		}
	case models.Array:
		for i, elem := range v {
			p := path + "." + strconv.Itoa(i)
			paths = collect(append(paths, p), elem, p)
		}
	}
	return paths
}
