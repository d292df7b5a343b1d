package tmdb

import (
	"fmt"
	"strconv"
)

// Locale defaults applied to every catalog query.
const (
	defaultLanguage = "ko-KR"
	defaultRegion   = "KR"
)

// Filter describes the constraints for a discovery query.
//
// Zero values mean "unset": no genre, no rating floor, no language, no
// year, no sort key, no runtime bucket. Page defaults to 1.
type Filter struct {
	Page         int
	Genre        string
	MinRating    float64
	Language     string
	Year         int
	SortBy       string
	Runtime      string
	IncludeAdult bool
}

// QueryBuilder produces fully-qualified catalog request targets.
//
// Building is pure string assembly in a fixed parameter order, so equal
// inputs yield byte-identical URLs.
type QueryBuilder struct {
	apiKey  string
	baseURL string
}

// NewQueryBuilder creates a [QueryBuilder] for the given credential and base URL.
func NewQueryBuilder(apiKey, baseURL string) QueryBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return QueryBuilder{apiKey: apiKey, baseURL: baseURL}
}

// PopularURL returns the popular-movies listing target.
func (b QueryBuilder) PopularURL() string {
	return fmt.Sprintf("%s/movie/popular?api_key=%s&language=%s", b.baseURL, b.apiKey, defaultLanguage)
}

// NowPlayingURL returns the now-playing listing target for a page.
func (b QueryBuilder) NowPlayingURL(page int) string {
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("%s/movie/now_playing?api_key=%s&language=%s&page=%d", b.baseURL, b.apiKey, defaultLanguage, page)
}

// GenreURL returns a discovery target restricted to a single genre code.
func (b QueryBuilder) GenreURL(genre string, page int) string {
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("%s/discover/movie?api_key=%s&with_genres=%s&language=%s&page=%d", b.baseURL, b.apiKey, genre, defaultLanguage, page)
}

// MovieURL returns the detail-lookup target for a movie id.
func (b QueryBuilder) MovieURL(id int64) string {
	return fmt.Sprintf("%s/movie/%d?api_key=%s&language=%s", b.baseURL, id, b.apiKey, defaultLanguage)
}

// DiscoverURL maps a [Filter] to a discovery request target.
//
// Parameter order is fixed: api_key, language, page, region, include_adult,
// then each conditional filter. The adult flag is always present exactly
// once; unset filters are omitted entirely. Unknown runtime bucket names
// emit nothing.
func (b QueryBuilder) DiscoverURL(f Filter) string {
	page := f.Page
	if page < 1 {
		page = 1
	}

	url := fmt.Sprintf("%s/discover/movie?api_key=%s&language=%s&page=%d", b.baseURL, b.apiKey, defaultLanguage, page)
	url += "&region=" + defaultRegion
	url += "&include_adult=" + strconv.FormatBool(f.IncludeAdult)

	if f.Genre != "" && f.Genre != "0" {
		url += "&with_genres=" + f.Genre
	}
	if f.MinRating > 0 {
		url += "&vote_average.gte=" + strconv.FormatFloat(f.MinRating, 'f', -1, 64)
	}
	if f.Language != "" {
		url += "&with_original_language=" + f.Language
	}
	if f.Year != 0 {
		url += "&primary_release_year=" + strconv.Itoa(f.Year)
	}
	if f.SortBy != "" {
		url += "&sort_by=" + f.SortBy
	}
	if r, ok := runtimeRanges[f.Runtime]; ok {
		if r.gte > 0 {
			url += "&with_runtime.gte=" + strconv.Itoa(r.gte)
		}
		if r.lte > 0 {
			url += "&with_runtime.lte=" + strconv.Itoa(r.lte)
		}
	}

	return url
}

// ImageURL returns the poster/backdrop URL for a TMDB image path, or the
// empty string when the path is empty. Size defaults to w300.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "w300"
	}
	return fmt.Sprintf("https://image.tmdb.org/t/p/%s%s", size, path)
}
