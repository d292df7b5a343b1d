// package tmdb implements the catalog API client and query builder.
//
// Response types based on https://developer.themoviedb.org/reference
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/shared"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production catalog API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Movie is a movie record from a listing response.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
}

// Page is a paginated listing response.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a genre record from the genre list endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}

// Client performs catalog API requests.
//
// Requests are rate limited client-side; TMDB enforces roughly 40 requests
// per 10 seconds per key.
type Client struct {
	builder    QueryBuilder
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewClient creates a catalog client with the given credential and base URL.
//
// A nil httpClient falls back to [http.DefaultClient]; a nil logger to the
// shared default.
func NewClient(apiKey, baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Client{
		builder:    NewQueryBuilder(apiKey, baseURL),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(4), 8),
		logger:     logger,
	}
}

// Builder returns the client's query builder.
func (c *Client) Builder() QueryBuilder {
	return c.builder
}

// doGet performs a rate-limited GET and decodes the JSON response into result.
func (c *Client) doGet(ctx context.Context, url string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug("catalog request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: status %d", shared.ErrMovieNotFound, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Popular retrieves the popular-movies listing.
func (c *Client) Popular(ctx context.Context) (*Page, error) {
	var page Page
	if err := c.doGet(ctx, c.builder.PopularURL(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FeaturedMovie retrieves the first popular movie, used as the billboard entry.
func (c *Client) FeaturedMovie(ctx context.Context) (*Movie, error) {
	page, err := c.Popular(ctx)
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, fmt.Errorf("%w: empty popular listing", shared.ErrMovieNotFound)
	}
	return &page.Results[0], nil
}

// NowPlaying retrieves the now-playing listing for a page.
func (c *Client) NowPlaying(ctx context.Context, pageNum int) (*Page, error) {
	var page Page
	if err := c.doGet(ctx, c.builder.NowPlayingURL(pageNum), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Discover retrieves the filtered discovery listing for a [Filter].
func (c *Client) Discover(ctx context.Context, f Filter) (*Page, error) {
	var page Page
	if err := c.doGet(ctx, c.builder.DiscoverURL(f), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Genres retrieves the full movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	url := fmt.Sprintf("%s/genre/movie/list?api_key=%s&language=%s", c.builder.baseURL, c.builder.apiKey, defaultLanguage)
	var list genreList
	if err := c.doGet(ctx, url, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// MovieDetail retrieves the detail record for a movie id as a flat field map.
//
// The map form feeds the wishlist's enrichment merge, which overlays these
// fields over locally supplied ones.
func (c *Client) MovieDetail(ctx context.Context, id int64) (map[string]any, error) {
	var detail map[string]any
	if err := c.doGet(ctx, c.builder.MovieURL(id), &detail); err != nil {
		return nil, err
	}
	return detail, nil
}
