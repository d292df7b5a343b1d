package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/urfave/cli/v3"
)

// BrowsePopular lists popular movies, or only the billboard entry with --featured.
func (r *Runner) BrowsePopular(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	featured := cmd.Bool("featured")

	catalog, err := r.catalogClient()
	if err != nil {
		return err
	}

	if featured {
		movie, err := catalog.FeaturedMovie(ctx)
		if err != nil {
			return err
		}
		if useJSON {
			return r.writeJSON(movie, pretty)
		}
		r.writePlain("Featured: %s (%.1f)\n", movie.Title, movie.VoteAverage)
		if movie.Overview != "" {
			r.writePlain("%s\n", movie.Overview)
		}
		return nil
	}

	r.logger.Info("fetching popular listing")

	page, err := catalog.Popular(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(page, pretty)
	}

	return r.printListing(page)
}

// BrowseNowPlaying lists movies currently in theaters.
func (r *Runner) BrowseNowPlaying(ctx context.Context, cmd *cli.Command) error {
	pageNum := cmd.Int("page")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	catalog, err := r.catalogClient()
	if err != nil {
		return err
	}

	r.logger.Infof("fetching now-playing listing page %v", pageNum)

	page, err := catalog.NowPlaying(ctx, int(pageNum))
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(page, pretty)
	}

	return r.printListing(page)
}

// BrowseDiscover lists movies matching the filter flags.
func (r *Runner) BrowseDiscover(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	filter := tmdb.Filter{
		Page:         int(cmd.Int("page")),
		Genre:        cmd.String("genre"),
		MinRating:    cmd.Float("rating"),
		Language:     cmd.String("language"),
		Year:         int(cmd.Int("year")),
		SortBy:       cmd.String("sort"),
		Runtime:      cmd.String("runtime"),
		IncludeAdult: cmd.Bool("adult"),
	}

	catalog, err := r.catalogClient()
	if err != nil {
		return err
	}

	r.logger.Info("fetching discovery listing", "filter", fmt.Sprintf("%+v", filter))

	page, err := catalog.Discover(ctx, filter)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(page, pretty)
	}

	return r.printListing(page)
}

// BrowseGenres lists the movie genre table.
func (r *Runner) BrowseGenres(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	catalog, err := r.catalogClient()
	if err != nil {
		return err
	}

	genres, err := catalog.Genres(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(genres, true)
	}

	for _, genre := range genres {
		r.writePlain("%d\t%s\n", genre.ID, genre.Name)
	}
	return nil
}

// printListing renders a listing page as numbered plain text.
func (r *Runner) printListing(page *tmdb.Page) error {
	r.writePlain("Page %d of %d (%d movies total)\n\n", page.Page, page.TotalPages, page.TotalResults)

	for i, movie := range page.Results {
		r.writePlain("%d. %s\n", i+1, movie.Title)
		r.writePlain("   ID: %d\n", movie.ID)
		r.writePlain("   Rating: %.1f (%d votes)\n", movie.VoteAverage, movie.VoteCount)
		if movie.ReleaseDate != "" {
			r.writePlain("   Released: %s\n", movie.ReleaseDate)
		}
		r.writePlain("\n")
	}

	return nil
}
