// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, browseCommand, wishlistCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with an email address or a catalog API key",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "material"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "kakao",
				Usage: "Sign in with Kakao using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthKakao,
			},
			{
				Name:   "logout",
				Usage:  "Clear all saved credentials",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// browseCommand handles catalog listing operations
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"b"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "popular",
				Usage: "List popular movies",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.BoolFlag{
						Name:  "featured",
						Usage: "Show only the billboard entry",
					},
				},
				Action: r.BrowsePopular,
			},
			{
				Name:    "now-playing",
				Aliases: []string{"now"},
				Usage:   "List movies now playing in theaters",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page to fetch",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.BrowseNowPlaying,
			},
			{
				Name:  "discover",
				Usage: "List movies matching filters",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Result page to fetch",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Genre code (see TMDB genre ids)",
					},
					&cli.FloatFlag{
						Name:  "rating",
						Usage: "Minimum vote average",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Original language code (e.g. ko, en)",
					},
					&cli.IntFlag{
						Name:  "year",
						Usage: "Primary release year",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order (e.g. popularity.desc)",
					},
					&cli.StringFlag{
						Name:  "runtime",
						Usage: "Runtime bucket label",
					},
					&cli.BoolFlag{
						Name:  "adult",
						Usage: "Include adult titles",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.BrowseDiscover,
			},
			{
				Name:  "genres",
				Usage: "List movie genres",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.BrowseGenres,
			},
		},
	}
}

// wishlistCommand handles saved-movie operations
func wishlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wishlist",
		Aliases: []string{"wl"},
		Usage:   "Manage the movie wishlist",
		Commands: []*cli.Command{
			{
				Name:  "toggle",
				Usage: "Add or remove a movie by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Movie title, used when the detail lookup is unavailable",
					},
				},
				Action: r.WishlistToggle,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Show saved movies",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.WishlistList,
			},
			{
				Name:  "export",
				Usage: "Export the wishlist to CSV, Markdown, or plain text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, or text",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (base filename or directory)",
					},
				},
				Action: r.WishlistExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing and wishlist management",
		Action:  r.TUI,
	}
}
