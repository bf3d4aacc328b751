package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/formatter"
	"github.com/mcncl/jsonsmith/internal/generator"
	"github.com/mcncl/jsonsmith/internal/models"
	"github.com/mcncl/jsonsmith/internal/parser"
	"github.com/mcncl/jsonsmith/internal/sample"
	"github.com/mcncl/jsonsmith/internal/stats"
	"github.com/mcncl/jsonsmith/internal/tree"
	"github.com/mcncl/jsonsmith/internal/validator"
	"gopkg.in/yaml.v3"
)

// InputFlag selects the input document.
type InputFlag struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
}

// OutputFlag selects where results are written.
type OutputFlag struct {
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

// ValidateCmd checks a document and reports the first syntax error.
type ValidateCmd struct {
	InputFlag `embed:""`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}

	outcome := validator.NewValidatorWithOptions(ctx.parseOptions()).Validate(text)
	if !outcome.OK() {
		return diagnosticError(outcome.Diagnostic)
	}

	fmt.Fprintf(ctx.Stdout, "Valid JSON (%s, %d lines)\n", stats.Size(text), stats.Lines(text))
	if c.Input != "" {
		// Loading a valid file counts as a visit.
		ctx.recordHistory(text)
	}
	return nil
}

// diagnosticError converts a failed validation into an error value.
func diagnosticError(d *models.Diagnostic) error {
	if d.Kind == models.DiagnosticEmptyInput {
		return errors.NewInputError(d.Message, errors.ErrEmptyInput)
	}
	return errors.NewSyntaxError(d.Message, d.Line, d.Column)
}

// FormatCmd pretty-prints a document.
type FormatCmd struct {
	InputFlag  `embed:""`
	OutputFlag `embed:""`
	Indent     *int `help:"Spaces per indentation level (0-10). Defaults to indent_size from the config." short:"n"`
}

func (c *FormatCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}

	formatted, err := formatter.NewFormatterWithOptions(ctx.parseOptions()).Format(text, ctx.Config.IndentSize)
	if err != nil {
		return err
	}

	ctx.recordHistory(formatted)
	return ctx.writeOutput(c.Output, formatted, true)
}

// MinifyCmd removes insignificant whitespace from a document.
type MinifyCmd struct {
	InputFlag  `embed:""`
	OutputFlag `embed:""`
}

func (c *MinifyCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}

	minified, err := formatter.NewFormatterWithOptions(ctx.parseOptions()).Minify(text)
	if err != nil {
		return err
	}

	ctx.recordHistory(minified)
	return ctx.writeOutput(c.Output, minified, true)
}

// TypeScriptCmd infers a TypeScript declaration from a sample document.
type TypeScriptCmd struct {
	InputFlag  `embed:""`
	OutputFlag `embed:""`
	RootName   string `help:"Name for the root declaration. Defaults to root_name from the config." short:"r"`
	Export     bool   `help:"Prefix the declaration with export."`
}

func (c *TypeScriptCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}

	ts := ctx.Config.TypeScript
	gen := generator.NewGeneratorWithOptions(generator.Options{
		Export:   ts.Export,
		Indent:   ts.IndentSize,
		MaxDepth: ts.MaxDepth,
		Parse:    ctx.parseOptions(),
	})
	code, err := gen.TypeScript(text, ts.RootName)
	if err != nil {
		return err
	}
	return ctx.writeOutput(c.Output, code, false)
}

// TreeCmd prints a document as an outline.
type TreeCmd struct {
	InputFlag `embed:""`
	MaxDepth  *int `help:"Collapse containers nested deeper than this. 0 means unlimited." name:"max-depth"`
	Paths     bool `help:"Show the path of every node."`
	ListPaths bool `help:"Print only the path of every node, one per line." name:"list-paths"`
}

func (c *TreeCmd) Run(ctx *Context) error {
	v, err := ctx.parse(c.Input)
	if err != nil {
		return err
	}

	if c.ListPaths {
		return ctx.writeOutput("", strings.Join(tree.Paths(v), "\n"), false)
	}
	out := tree.Render(v, tree.Options{
		MaxDepth:  ctx.Config.Tree.MaxDepth,
		ShowPaths: ctx.Config.Tree.ShowPaths,
	})
	return ctx.writeOutput("", out, false)
}

// StatsCmd reports the size and shape of a document.
type StatsCmd struct {
	InputFlag `embed:""`
}

type statsReport struct {
	Size          string `yaml:"size"`
	Lines         int    `yaml:"lines"`
	stats.Summary `yaml:",inline"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}
	v, err := ctx.parseText(text)
	if err != nil {
		return err
	}

	return ctx.writeYAML(statsReport{
		Size:    stats.Size(text),
		Lines:   stats.Lines(text),
		Summary: stats.Summarize(v),
	})
}

// EscapeCmd escapes text for use inside a string literal.
type EscapeCmd struct {
	InputFlag `embed:""`
}

func (c *EscapeCmd) Run(ctx *Context) error {
	text, err := ctx.Source.Read(c.Input)
	if err != nil {
		return err
	}
	return ctx.writeOutput("", formatter.Escape(text), false)
}

// SampleCmd prints the bundled sample document.
type SampleCmd struct {
	OutputFlag `embed:""`
}

func (c *SampleCmd) Run(ctx *Context) error {
	return ctx.writeOutput(c.Output, sample.JSON(), true)
}

// InfoCmd reports store usage.
type InfoCmd struct{}

func (c *InfoCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return ctx.writeYAML(s.Info())
}

func (c *Context) parseOptions() parser.Options {
	return parser.Options{Lenient: c.Config.Lenient}
}

// parse reads the document at path (or stdin) and parses it.
func (c *Context) parse(path string) (models.Value, error) {
	text, err := c.Source.Read(path)
	if err != nil {
		return nil, err
	}
	return c.parseText(text)
}

func (c *Context) parseText(text string) (models.Value, error) {
	outcome := validator.NewValidatorWithOptions(c.parseOptions()).Validate(text)
	if !outcome.OK() {
		return nil, diagnosticError(outcome.Diagnostic)
	}
	return outcome.Value, nil
}

// recordHistory appends content to the history. Failures are logged and
// otherwise ignored; history is a convenience.
func (c *Context) recordHistory(content string) {
	if !c.Config.Store.RecordHistory {
		return
	}
	s, err := c.Store()
	if err != nil {
		c.Logger.Warn("history not recorded", "error", err)
		return
	}
	entry, err := s.AddHistory(content, stats.Size(content))
	if err != nil {
		c.Logger.Warn("history not recorded", "error", err)
		return
	}
	c.Logger.Debug("recorded history entry", "id", entry.ID, "size", entry.Size)
}

// writeOutput writes text to path, or to stdout when path is empty. JSON
// files get a .json extension when they lack one.
func (c *Context) writeOutput(path, text string, jsonFile bool) error {
	if path == "" {
		if _, err := fmt.Fprintln(c.Stdout, text); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	if jsonFile && !strings.HasSuffix(strings.ToLower(path), ".json") {
		path += ".json"
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
	}
	fmt.Fprintf(c.Stderr, "Output written to %s\n", path)
	return nil
}

func (c *Context) writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.NewOutputError("failed to encode output", err)
	}
	if _, err := c.Stdout.Write(data); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// preview shortens content to its first line and at most n characters.
func preview(content string, n int) string {
	line, _, cut := strings.Cut(strings.TrimSpace(content), "\n")
	if utf8.RuneCountInString(line) > n {
		line = string([]rune(line)[:n])
		cut = true
	}
	if cut {
		line += "..."
	}
	return line
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
}
