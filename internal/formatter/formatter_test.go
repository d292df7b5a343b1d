package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	th "github.com/desertthunder/mvx/internal/testing"
	"github.com/desertthunder/mvx/internal/wishlist"
)

func sampleEntries() []wishlist.Movie {
	return []wishlist.Movie{
		{
			ID:    27205,
			Title: "인셉션",
			Extra: map[string]any{
				"release_date": "2010-07-21",
				"vote_average": 8.4,
				"runtime":      float64(148),
				"overview":     "당신의 꿈을 훔친다",
				"poster_path":  "/inception.jpg",
			},
		},
		{
			ID:    496243,
			Title: "기생충",
			Extra: map[string]any{
				"release_date": "2019-05-30",
				"vote_average": 8.5,
				"runtime":      float64(132),
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleEntries())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Release Date,Rating,Runtime,Overview") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "27205") {
			t.Errorf("CSV missing first movie ID")
		}
		if !strings.Contains(output, "인셉션") {
			t.Errorf("CSV missing first movie title")
		}
		if !strings.Contains(output, "2h 28m") {
			t.Errorf("CSV missing formatted runtime, got: %s", output)
		}
		if !strings.Contains(output, "8.5") {
			t.Errorf("CSV missing rating")
		}
	})

	t.Run("ExportToCSV Without Enrichment Fields", func(t *testing.T) {
		data, err := ExportToCSV([]wishlist.Movie{{ID: 1, Title: "무제"}})
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}
		if !strings.Contains(string(data), "1,무제,,0.0,-,") {
			t.Errorf("unexpected record for bare entry: %s", data)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("without cover image", func(t *testing.T) {
			data, err := ExportToMarkdown(sampleEntries(), "")
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}

			output := string(data)

			if !strings.Contains(output, "# Wishlist") {
				t.Errorf("Markdown missing title")
			}
			if !strings.Contains(output, "**Movies**: 2") {
				t.Errorf("Markdown missing movie count")
			}
			if !strings.Contains(output, "## Movies") {
				t.Errorf("Markdown missing movies section")
			}
			if !strings.Contains(output, "1. 인셉션 (2010-07-21) [2h 28m]") {
				t.Errorf("Markdown missing first entry line, got: %s", output)
			}
			if strings.Contains(output, "![Cover]") {
				t.Errorf("Markdown should not reference a cover image")
			}
		})

		t.Run("with cover image", func(t *testing.T) {
			data, err := ExportToMarkdown(sampleEntries(), "cover.jpg")
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}
			if !strings.Contains(string(data), "![Cover](cover.jpg)") {
				t.Errorf("Markdown missing cover reference")
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleEntries())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Wishlist: 2 movies") {
			t.Errorf("text missing header, got: %s", output)
		}
		if !strings.Contains(output, "2. 기생충") {
			t.Errorf("text missing numbered entry")
		}
	})
}

func TestWriteExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "export")

		result, err := WriteCSVExport(sampleEntries(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.MoviesFile)
		th.AssertFileExists(t, result.MetadataFile)

		metadata := th.MustReadFile(t, result.MetadataFile)
		if !strings.Contains(metadata, "기생충") {
			t.Errorf("metadata JSON missing entry, got: %s", metadata)
		}
		if !strings.Contains(metadata, "export_id") {
			t.Errorf("metadata JSON missing export id, got: %s", metadata)
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.txt")

		written, err := WriteTextExport(sampleEntries(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}
		th.AssertFileExists(t, written)
	})

	t.Run("WriteTextExport Default Filename", func(t *testing.T) {
		wd := th.MustGetwd(t)
		th.MustChdir(t, t.TempDir())
		defer th.MustChdir(t, wd)

		written, err := WriteTextExport(sampleEntries(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != "wishlist_movies.txt" {
			t.Errorf("expected default filename, got %s", written)
		}
		th.AssertFileExists(t, written)
	})

	t.Run("WriteMarkdownExport Without Posters", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "wishlist")

		result, err := WriteMarkdownExport([]wishlist.Movie{{ID: 1, Title: "무제"}}, dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		th.AssertDirExists(t, result.Directory)
		th.AssertFileExists(t, filepath.Join(dir, "README.md"))
		if result.CoverImage != "" {
			t.Errorf("expected no cover image, got %s", result.CoverImage)
		}
	})
}

func TestFormatRuntime(t *testing.T) {
	cases := map[float64]string{
		0:   "-",
		45:  "45m",
		60:  "1h 0m",
		148: "2h 28m",
	}
	for minutes, want := range cases {
		if got := formatRuntime(minutes); got != want {
			t.Errorf("formatRuntime(%v): expected %q, got %q", minutes, want, got)
		}
	}
}

func TestDownloadImage(t *testing.T) {
	t.Run("Empty URL", func(t *testing.T) {
		if _, err := DownloadImage(""); err == nil {
			t.Error("expected error for empty URL")
		}
	})
}
