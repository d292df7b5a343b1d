package tmdb

import (
	"strings"
	"testing"
)

func TestQueryBuilder(t *testing.T) {
	b := NewQueryBuilder("secret", "")

	t.Run("PopularURL", func(t *testing.T) {
		want := "https://api.themoviedb.org/3/movie/popular?api_key=secret&language=ko-KR"
		if got := b.PopularURL(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("NowPlayingURL Clamps Page", func(t *testing.T) {
		if got := b.NowPlayingURL(0); !strings.HasSuffix(got, "&page=1") {
			t.Errorf("expected page clamped to 1, got %q", got)
		}
	})

	t.Run("GenreURL", func(t *testing.T) {
		got := b.GenreURL("28", 2)
		if !strings.Contains(got, "/discover/movie?") || !strings.Contains(got, "with_genres=28") || !strings.HasSuffix(got, "&page=2") {
			t.Errorf("unexpected genre URL %q", got)
		}
	})

	t.Run("MovieURL", func(t *testing.T) {
		want := "https://api.themoviedb.org/3/movie/42?api_key=secret&language=ko-KR"
		if got := b.MovieURL(42); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("DiscoverURL", func(t *testing.T) {
		t.Run("All Unset Emits Only Defaults", func(t *testing.T) {
			got := b.DiscoverURL(Filter{Page: 1})
			want := "https://api.themoviedb.org/3/discover/movie?api_key=secret&language=ko-KR&page=1&region=KR&include_adult=false"
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}

			for _, param := range []string{"with_genres", "vote_average", "with_original_language", "primary_release_year", "sort_by", "with_runtime"} {
				if strings.Contains(got, param) {
					t.Errorf("expected %s to be omitted, got %q", param, got)
				}
			}
		})

		t.Run("Deterministic", func(t *testing.T) {
			f := Filter{Page: 3, Genre: "28", MinRating: 7.5, Language: "ko", Year: 2021, SortBy: "popularity.desc", Runtime: "90-120분", IncludeAdult: true}
			first := b.DiscoverURL(f)
			for i := 0; i < 10; i++ {
				if got := b.DiscoverURL(f); got != first {
					t.Fatalf("expected byte-identical URLs, got %q then %q", first, got)
				}
			}
		})

		t.Run("Genre Sentinel Is Omitted", func(t *testing.T) {
			if got := b.DiscoverURL(Filter{Genre: "0"}); strings.Contains(got, "with_genres") {
				t.Errorf("expected sentinel genre to emit nothing, got %q", got)
			}
		})

		t.Run("Zero Rating Is Omitted", func(t *testing.T) {
			if got := b.DiscoverURL(Filter{MinRating: 0}); strings.Contains(got, "vote_average.gte") {
				t.Errorf("expected zero rating to emit nothing, got %q", got)
			}
		})

		t.Run("Rating Filter", func(t *testing.T) {
			got := b.DiscoverURL(Filter{MinRating: 7.5})
			if !strings.Contains(got, "&vote_average.gte=7.5") {
				t.Errorf("expected rating filter, got %q", got)
			}
		})

		t.Run("Adult Flag Appears Exactly Once", func(t *testing.T) {
			got := b.DiscoverURL(Filter{IncludeAdult: true})
			if strings.Count(got, "include_adult=") != 1 {
				t.Errorf("expected include_adult exactly once, got %q", got)
			}
			if !strings.Contains(got, "include_adult=true") {
				t.Errorf("expected include_adult=true, got %q", got)
			}
		})

		t.Run("Bounded Runtime Bucket Emits Both Bounds", func(t *testing.T) {
			got := b.DiscoverURL(Filter{Runtime: "60-90분"})
			if !strings.Contains(got, "with_runtime.gte=60") || !strings.Contains(got, "with_runtime.lte=90") {
				t.Errorf("expected gte=60 and lte=90, got %q", got)
			}
		})

		t.Run("Open Runtime Bucket Emits One Bound", func(t *testing.T) {
			got := b.DiscoverURL(Filter{Runtime: "150분 이상"})
			if !strings.Contains(got, "with_runtime.gte=150") {
				t.Errorf("expected gte=150, got %q", got)
			}
			if strings.Contains(got, "with_runtime.lte") {
				t.Errorf("expected no lte bound, got %q", got)
			}

			got = b.DiscoverURL(Filter{Runtime: "60분 이하"})
			if !strings.Contains(got, "with_runtime.lte=60") || strings.Contains(got, "with_runtime.gte") {
				t.Errorf("expected only lte=60, got %q", got)
			}
		})

		t.Run("Unknown Runtime Bucket Is Ignored", func(t *testing.T) {
			if got := b.DiscoverURL(Filter{Runtime: "아주 김"}); strings.Contains(got, "with_runtime") {
				t.Errorf("expected unknown bucket to emit nothing, got %q", got)
			}
		})

		t.Run("Year And Sort Filters", func(t *testing.T) {
			got := b.DiscoverURL(Filter{Year: 1999, SortBy: "vote_average.desc,vote_count.desc"})
			if !strings.Contains(got, "&primary_release_year=1999") {
				t.Errorf("expected year filter, got %q", got)
			}
			if !strings.Contains(got, "&sort_by=vote_average.desc,vote_count.desc") {
				t.Errorf("expected sort filter, got %q", got)
			}
		})
	})
}

func TestImageURL(t *testing.T) {
	t.Run("Empty Path", func(t *testing.T) {
		if got := ImageURL("", "w500"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Default Size", func(t *testing.T) {
		want := "https://image.tmdb.org/t/p/w300/poster.jpg"
		if got := ImageURL("/poster.jpg", ""); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestCodeTables(t *testing.T) {
	t.Run("Genre Sentinel", func(t *testing.T) {
		if GenreCodes["장르 (전체)"] != "0" {
			t.Error("expected all-genres label to map to sentinel 0")
		}
	})

	t.Run("Language All Maps To Empty", func(t *testing.T) {
		if LanguageCodes["언어 (전체)"] != "" {
			t.Error("expected all-languages label to map to empty code")
		}
	})

	t.Run("Runtime Buckets Are Complete", func(t *testing.T) {
		if len(runtimeRanges) != 5 {
			t.Errorf("expected 5 runtime buckets, got %d", len(runtimeRanges))
		}
	})
}
