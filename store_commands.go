package main

import (
	"fmt"
	"strings"

	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/mcncl/jsonsmith/internal/store"
)

const previewLength = 40

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"1" help:"List history entries, newest first."`
	Show   HistoryShowCmd   `cmd:"" help:"Print the content of a history entry."`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a history entry."`
	Clear  HistoryClearCmd  `cmd:"" help:"Delete all history entries."`
}

type HistoryListCmd struct{}

func (c *HistoryListCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	history := s.History()
	if len(history) == 0 {
		fmt.Fprintln(ctx.Stdout, "No history entries")
		return nil
	}
	for _, e := range history {
		fmt.Fprintf(ctx.Stdout, "%s  %s  %10s  %s\n", e.ID, formatTimestamp(e.Timestamp), e.Size, preview(e.Content, previewLength))
	}
	return nil
}

type HistoryShowCmd struct {
	ID string `arg:"" help:"Entry ID."`
}

func (c *HistoryShowCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	entry, err := s.HistoryEntry(c.ID)
	if err != nil {
		return err
	}
	return ctx.writeOutput("", entry.Content, false)
}

type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Entry ID."`
}

func (c *HistoryDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return s.DeleteHistory(c.ID)
}

type HistoryClearCmd struct{}

func (c *HistoryClearCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return s.ClearHistory()
}

// FavoritesCmd groups the favorites subcommands.
type FavoritesCmd struct {
	Add    FavoritesAddCmd    `cmd:"" help:"Save the input under a name."`
	List   FavoritesListCmd   `cmd:"" default:"1" help:"List favorites, newest first."`
	Show   FavoritesShowCmd   `cmd:"" help:"Print the content of a favorite."`
	Update FavoritesUpdateCmd `cmd:"" help:"Replace the name and content of a favorite."`
	Delete FavoritesDeleteCmd `cmd:"" help:"Delete a favorite."`
	Clear  FavoritesClearCmd  `cmd:"" help:"Delete all favorites."`
}

type FavoritesAddCmd struct {
	Name      string `arg:"" help:"Name of the favorite."`
	InputFlag `embed:""`
}

func (c *FavoritesAddCmd) Run(ctx *Context) error {
	content, err := readContent(ctx, c.Input)
	if err != nil {
		return err
	}
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	fav, err := s.AddFavorite(c.Name, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Saved favorite %q with ID %s\n", fav.Name, fav.ID)
	return nil
}

type FavoritesListCmd struct{}

func (c *FavoritesListCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	favorites := s.Favorites()
	if len(favorites) == 0 {
		fmt.Fprintln(ctx.Stdout, "No favorites")
		return nil
	}
	for _, f := range favorites {
		fmt.Fprintf(ctx.Stdout, "%s  %s  %s  %s\n", f.ID, formatTimestamp(f.Timestamp), f.Name, preview(f.Content, previewLength))
	}
	return nil
}

type FavoritesShowCmd struct {
	ID string `arg:"" help:"Favorite ID."`
}

func (c *FavoritesShowCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	fav, err := s.Favorite(c.ID)
	if err != nil {
		return err
	}
	return ctx.writeOutput("", fav.Content, false)
}

type FavoritesUpdateCmd struct {
	ID        string `arg:"" help:"Favorite ID."`
	Name      string `arg:"" help:"New name."`
	InputFlag `embed:""`
}

func (c *FavoritesUpdateCmd) Run(ctx *Context) error {
	content, err := readContent(ctx, c.Input)
	if err != nil {
		return err
	}
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	fav, err := s.UpdateFavorite(c.ID, c.Name, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Updated favorite %q\n", fav.Name)
	return nil
}

type FavoritesDeleteCmd struct {
	ID string `arg:"" help:"Favorite ID."`
}

func (c *FavoritesDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return s.DeleteFavorite(c.ID)
}

type FavoritesClearCmd struct{}

func (c *FavoritesClearCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return s.ClearFavorites()
}

// readContent reads a document to store. Content is kept as given, but
// blank documents are refused.
func readContent(ctx *Context, path string) (string, error) {
	content, err := ctx.Source.Read(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", errors.NewInputError("nothing to save", errors.ErrEmptyInput)
	}
	return content, nil
}

// SettingsCmd groups the settings subcommands.
type SettingsCmd struct {
	Show  SettingsShowCmd  `cmd:"" default:"1" help:"Print the stored settings."`
	Set   SettingsSetCmd   `cmd:"" help:"Change one or more settings."`
	Reset SettingsResetCmd `cmd:"" help:"Restore the default settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return ctx.writeYAML(s.Settings())
}

type SettingsSetCmd struct {
	Theme      *string `help:"Color theme: light or dark."`
	FontSize   *int    `help:"Editor font size."`
	AutoFormat *bool   `help:"Format documents as they are loaded."`
	IndentSize *int    `help:"Preferred indentation width (0-10)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}

	update := store.SettingsUpdate{
		FontSize:   c.FontSize,
		AutoFormat: c.AutoFormat,
		IndentSize: c.IndentSize,
	}
	if c.Theme != nil {
		theme := store.Theme(*c.Theme)
		update.Theme = &theme
	}

	settings, err := s.UpdateSettings(update)
	if err != nil {
		return err
	}
	return ctx.writeYAML(settings)
}

type SettingsResetCmd struct{}

func (c *SettingsResetCmd) Run(ctx *Context) error {
	s, err := ctx.Store()
	if err != nil {
		return err
	}
	return s.ResetSettings()
}
