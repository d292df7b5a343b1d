package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/desertthunder/mvx/internal/wishlist"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = entryItem{}
)

// movieItem wraps [tmdb.Movie] to implement [list.Item].
type movieItem struct {
	movie tmdb.Movie
	saved bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	if i.saved {
		return fmt.Sprintf("★ %s", i.movie.Title)
	}
	return i.movie.Title
}
func (i movieItem) Description() string {
	desc := fmt.Sprintf("%.1f", i.movie.VoteAverage)
	if i.movie.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.movie.ReleaseDate)
	}
	return desc
}

// entryItem wraps [wishlist.Movie] to implement [list.Item].
type entryItem struct {
	entry wishlist.Movie
}

func (i entryItem) FilterValue() string { return i.entry.Title }
func (i entryItem) Title() string       { return i.entry.Title }
func (i entryItem) Description() string {
	date, _ := i.entry.Field("release_date").(string)
	overview, _ := i.entry.Field("overview").(string)
	switch {
	case date != "" && overview != "":
		return fmt.Sprintf("%s • %s", date, overview)
	case date != "":
		return date
	default:
		return overview
	}
}
