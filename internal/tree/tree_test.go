package tree

import (
	"testing"

	"github.com/mcncl/jsonsmith/internal/models"
	"github.com/mcncl/jsonsmith/internal/parser"
	"github.com/stretchr/testify/assert"
)

const doc = `{"name":"JSON Formatter","tags":["a",2],"settings":{"dark":true,"size":1.5e0},"none":null,"empty":{}}`

func TestRender(t *testing.T) {
	v := parser.MustParseString(doc)

	expected := `root: Object(5)
  name: "JSON Formatter"
  tags: Array(2)
    0: "a"
    1: 2
  settings: Object(2)
    dark: true
    size: 1.5
  none: null
  empty: Object(0)`
	assert.Equal(t, expected, Render(v, Options{}))
}

func TestRender_MaxDepth(t *testing.T) {
	v := parser.MustParseString(`{"a":{"b":{"c":1}},"d":[[1]]}`)

	expected := `root: Object(2)
  a: Object(1)
  d: Array(1)`
	assert.Equal(t, expected, Render(v, Options{MaxDepth: 1}))

	assert.Equal(t, "root: Object(2)\n  a: Object(1)\n    b: Object(1)\n      c: 1\n  d: Array(1)\n    0: Array(1)\n      0: 1",
		Render(v, Options{}))
}

func TestRender_ShowPaths(t *testing.T) {
	v := parser.MustParseString(`{"s":{"t":["x"]}}`)

	expected := `root: Object(1)  (root)
  s: Object(1)  (root.s)
    t: Array(1)  (root.s.t)
      0: "x"  (root.s.t.0)`
	assert.Equal(t, expected, Render(v, Options{ShowPaths: true}))
}

func TestRender_Scalars(t *testing.T) {
	assert.Equal(t, "root: null", Render(models.Null{}, Options{}))
	assert.Equal(t, "root: null", Render(nil, Options{}))
	assert.Equal(t, `root: "hi"`, Render(models.String("hi"), Options{}))
	assert.Equal(t, "root: false", Render(models.Bool(false), Options{}))
	assert.Equal(t, "root: 1e+21", Render(models.Number(1e21), Options{}))
	assert.Equal(t, "root: Array(0)", Render(models.Array{}, Options{}))
}

func TestPaths(t *testing.T) {
	v := parser.MustParseString(`{"settings":{"theme":"dark"},"list":[1,{"x":null}]}`)

	assert.Equal(t, []string{
		"root",
		"root.settings",
		"root.settings.theme",
		"root.list",
		"root.list.0",
		"root.list.1",
		"root.list.1.x",
	}, Paths(v))

	assert.Equal(t, []string{"root"}, Paths(models.Number(3)))
}
