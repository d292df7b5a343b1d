package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/session"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/storage"
	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/desertthunder/mvx/internal/wishlist"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	catalog    *tmdb.Client
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer

	db       *sql.DB
	storage  storage.Store
	session  *session.Store
	wishlist *wishlist.Store
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    *tmdb.Client
	Storage    storage.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		catalog:    opts.Catalog,
		storage:    opts.Storage,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, used by the TUI to log to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// openStores lazily initializes the storage-backed session and wishlist stores.
//
// When no storage adapter was injected, the configured SQLite database is
// opened and migrated first. The catalog client, when available, serves as
// the wishlist's detail enricher.
func (r *Runner) openStores() error {
	if r.session != nil {
		return nil
	}

	if r.storage == nil {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		r.db = db
		r.storage = storage.NewSQLiteStore(db)
	}

	r.session = session.NewStore(r.storage, r.logger)

	var enricher wishlist.Enricher
	if catalog, err := r.catalogClient(); err == nil {
		enricher = catalog
	}
	r.wishlist = wishlist.NewStore(r.storage, enricher, r.logger)

	return nil
}

// catalogClient returns the catalog client, building one on first use.
//
// The API key comes from configuration first, then from a persisted api_key
// credential, so a key saved via `mvx auth login` works without a config file.
func (r *Runner) catalogClient() (*tmdb.Client, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}

	apiKey := r.config.Credentials.TMDB.APIKey
	if apiKey == "" {
		if r.storage == nil {
			if err := r.openStores(); err != nil {
				return nil, err
			}
		}
		if stored, err := r.storage.Get(session.KeyAPIKey); err == nil {
			apiKey = stored
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no catalog API key configured", shared.ErrNotAuthenticated)
	}

	r.catalog = tmdb.NewClient(apiKey, r.config.Credentials.TMDB.BaseURL, r.httpClient, r.logger)
	return r.catalog, nil
}

// Close releases the database handle when the runner opened one.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
