package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/mvx/internal/formatter"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/wishlist"
	"github.com/urfave/cli/v3"
)

// WishlistToggle adds or removes a movie from the wishlist.
func (r *Runner) WishlistToggle(ctx context.Context, cmd *cli.Command) error {
	rawID := cmd.StringArg("id")
	if rawID == "" {
		return fmt.Errorf("%w: movie id required", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: movie id must be numeric, got %q", shared.ErrInvalidArgument, rawID)
	}

	if err := r.openStores(); err != nil {
		return err
	}

	movie := wishlist.Movie{ID: id, Title: cmd.String("title")}
	added, err := r.wishlist.Toggle(ctx, movie)
	if err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}

	if added {
		return r.writePlain("✓ Added movie %d to wishlist (%d saved)\n", id, r.wishlist.Len())
	}
	return r.writePlain("✓ Removed movie %d from wishlist (%d saved)\n", id, r.wishlist.Len())
}

// WishlistList shows the saved movies.
func (r *Runner) WishlistList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.openStores(); err != nil {
		return err
	}

	entries := r.wishlist.Entries()

	if useJSON {
		return r.writeJSON(entries, pretty)
	}

	if len(entries) == 0 {
		return r.writePlain("Wishlist is empty\n")
	}

	r.writePlain("Saved %d movies:\n\n", len(entries))
	for i, entry := range entries {
		r.writePlain("%d. %s\n", i+1, entry.Title)
		r.writePlain("   ID: %d\n", entry.ID)
		if date, ok := entry.Field("release_date").(string); ok && date != "" {
			r.writePlain("   Released: %s\n", date)
		}
		if rating, ok := entry.Field("vote_average").(float64); ok && rating > 0 {
			r.writePlain("   Rating: %.1f\n", rating)
		}
		r.writePlain("\n")
	}

	return nil
}

// WishlistExport writes the wishlist to CSV, Markdown, or plain text files.
func (r *Runner) WishlistExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")

	if err := r.openStores(); err != nil {
		return err
	}

	entries := r.wishlist.Entries()
	if len(entries) == 0 {
		return r.writePlain("Wishlist is empty, nothing to export\n")
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(entries, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wishlist exported\n")
		r.writePlain("  Movies: %s\n", result.MoviesFile)
		r.writePlain("  Metadata: %s\n", result.MetadataFile)
		return nil

	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(entries, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlain("✓ Wishlist exported to %s\n", result.Directory)
		for _, file := range result.Files {
			r.writePlain("  %s\n", file)
		}
		return nil

	case "text", "txt":
		path, err := formatter.WriteTextExport(entries, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		return r.writePlain("✓ Wishlist exported to %s\n", path)

	default:
		return fmt.Errorf("%w: unknown format %q (expected csv, markdown, or text)", shared.ErrInvalidFlag, format)
	}
}
