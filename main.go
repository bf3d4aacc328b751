package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsonsmith/internal/config"
	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/input"
	"github.com/mcncl/jsonsmith/internal/store"
)

// CLI defines the command-line interface
var CLI struct {
	Config  string           `help:"Path to a config file. Defaults to the nearest .jsonsmith.yml." type:"path"`
	Store   string           `help:"Path to the history, favorites and settings store." type:"path"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Lenient bool             `help:"Accept comments and trailing commas in input." short:"l"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`

	Validate   ValidateCmd   `cmd:"" help:"Check that the input is valid JSON."`
	Format     FormatCmd     `cmd:"" help:"Pretty-print JSON."`
	Minify     MinifyCmd     `cmd:"" help:"Remove insignificant whitespace from JSON."`
	TypeScript TypeScriptCmd `cmd:"" name:"typescript" help:"Generate a TypeScript declaration from sample JSON."`
	Tree       TreeCmd       `cmd:"" help:"Show JSON as an outline."`
	Stats      StatsCmd      `cmd:"" help:"Show size, line count and shape of JSON."`
	Escape     EscapeCmd     `cmd:"" help:"Escape text for embedding in a string literal."`
	Sample     SampleCmd     `cmd:"" help:"Print a sample JSON document."`
	History    HistoryCmd    `cmd:"" help:"Manage recently processed documents."`
	Favorites  FavoritesCmd  `cmd:"" help:"Manage saved documents."`
	Settings   SettingsCmd   `cmd:"" help:"Manage stored preferences."`
	Info       InfoCmd       `cmd:"" help:"Show store usage."`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
	Source *input.Source

	store *store.Store
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonsmith"),
		kong.Description("A tool to validate, format and explore JSON"),
		kong.UsageOnError(),
		kong.Vars{"version": "jsonsmith version " + Version},
	)

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, err := newContext()
	if err == nil {
		err = kctx.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonsmith --help\n")
		os.Exit(1)
	}
}

// newContext loads the configuration and wires the runtime context from
// the parsed command line.
func newContext() (*Context, error) {
	logger := newLogger(os.Stderr, CLI.Debug)

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath != "" {
		logger.Debug("loading config", "path", configPath)
	}

	cfg, err := config.LoadConfigWithCLI(configPath, overrides())
	if err != nil {
		return nil, errors.NewConfigError(err.Error(), err)
	}

	return &Context{
		Debug:  CLI.Debug,
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Source: input.NewSource(),
	}, nil
}

// overrides collects the command-line values that take precedence over the
// config file.
func overrides() config.Overrides {
	var o config.Overrides
	if CLI.Lenient {
		o.Lenient = &CLI.Lenient
	}
	if CLI.Store != "" {
		o.StorePath = &CLI.Store
	}
	o.IndentSize = CLI.Format.Indent
	if CLI.TypeScript.RootName != "" {
		o.RootName = &CLI.TypeScript.RootName
	}
	if CLI.TypeScript.Export {
		o.Export = &CLI.TypeScript.Export
	}
	o.MaxDepth = CLI.Tree.MaxDepth
	if CLI.Tree.Paths {
		o.ShowPaths = &CLI.Tree.Paths
	}
	return o
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Store opens the store named by the configuration on first use.
func (c *Context) Store() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	path, err := c.Config.StorePath()
	if err != nil {
		return nil, errors.NewStorageError("failed to locate store", err)
	}
	c.Logger.Debug("opening store", "path", path, "compress", c.Config.Store.Compress)
	c.store = store.New(
		store.NewFileBackend(path, c.Config.Store.Compress),
		store.WithLogger(c.Logger),
		store.WithHistoryLimit(c.Config.Store.HistoryLimit),
		store.WithFavoritesLimit(c.Config.Store.FavoritesLimit),
	)
	return c.store, nil
}
