// package formatter provides functions to export wishlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/desertthunder/mvx/internal/wishlist"
)

// fieldString reads a string-valued detail field, "" when absent or mistyped.
func fieldString(m wishlist.Movie, name string) string {
	s, _ := m.Field(name).(string)
	return s
}

// fieldNumber reads a numeric detail field, 0 when absent or mistyped.
func fieldNumber(m wishlist.Movie, name string) float64 {
	n, _ := m.Field(name).(float64)
	return n
}

// formatRuntime renders minutes as "2h 28m"; "-" when unknown.
func formatRuntime(minutes float64) string {
	if minutes <= 0 {
		return "-"
	}
	m := int(minutes)
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

// ExportToCSV converts wishlist entries to CSV with columns: ID, Title, Release Date, Rating, Runtime, Overview
func ExportToCSV(entries []wishlist.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Release Date", "Rating", "Runtime", "Overview"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			fmt.Sprintf("%d", entry.ID),
			entry.Title,
			fieldString(entry, "release_date"),
			fmt.Sprintf("%.1f", fieldNumber(entry, "vote_average")),
			formatRuntime(fieldNumber(entry, "runtime")),
			fieldString(entry, "overview"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts wishlist entries to Markdown format with optional cover image
func ExportToMarkdown(entries []wishlist.Movie, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Wishlist\n\n")

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(entries)))

	buf.WriteString("## Movies\n\n")
	for i, entry := range entries {
		datePart := ""
		if date := fieldString(entry, "release_date"); date != "" {
			datePart = fmt.Sprintf(" (%s)", date)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, entry.Title, datePart, formatRuntime(fieldNumber(entry, "runtime"))))
	}

	return buf.Bytes(), nil
}

// ExportToText converts wishlist entries to plain text format
func ExportToText(entries []wishlist.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Wishlist: %d movies\n\n", len(entries)))

	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry.Title))
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// ExportMetadata describes a single export run alongside the entries it wrote.
type ExportMetadata struct {
	ExportID    string           `json:"export_id"`
	GeneratedAt string           `json:"generated_at"`
	Count       int              `json:"count"`
	Movies      []wishlist.Movie `json:"movies"`
}

// ToMetadataJSON generates a JSON representation of the wishlist entries
func ToMetadataJSON(entries []wishlist.Movie) ([]byte, error) {
	metadata := ExportMetadata{
		ExportID:    shared.GenerateID(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Count:       len(entries),
		Movies:      entries,
	}
	return shared.MarshalJSON(metadata, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	MoviesFile   string
	MetadataFile string
}

// WriteCSVExport exports the wishlist to CSV with an accompanying metadata JSON file.
//
// Defaults to "wishlist" as the base filename & creates {base}_movies.csv and {base}_metadata.json
func WriteCSVExport(entries []wishlist.Movie, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "wishlist"
	}

	csvData, err := ExportToCSV(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	moviesFile := baseFilepath + "_movies.csv"
	if err := os.WriteFile(moviesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		MoviesFile:   moviesFile,
		MetadataFile: metadataFile,
	}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteMarkdownExport exports the wishlist to Markdown format in a dedicated directory.
//
// Directory name defaults to "wishlist". The cover image is the first entry's
// poster when one is available.
// Creates a directory structure: {dir}/README.md and optionally {dir}/cover.jpg
func WriteMarkdownExport(entries []wishlist.Movie, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = "wishlist"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if imageURL := coverURL(entries); imageURL != "" {
		imageData, err := DownloadImage(imageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download cover image: %v\n", err)
		} else {
			coverImageFilename = "cover.jpg"
			coverImagePath := fmt.Sprintf("%s/%s", outputDir, coverImageFilename)
			if err := os.WriteFile(coverImagePath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save cover image: %v\n", err)
				coverImageFilename = ""
			} else {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			}
		}
	}

	mdData, err := ExportToMarkdown(entries, coverImageFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport exports the wishlist to plain text format.
//
// Defaults to wishlist_movies.txt as the filename.
func WriteTextExport(entries []wishlist.Movie, filepath string) (string, error) {
	if filepath == "" {
		filepath = "wishlist_movies.txt"
	}

	textData, err := ExportToText(entries)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// coverURL picks the first entry carrying a poster path.
func coverURL(entries []wishlist.Movie) string {
	for _, entry := range entries {
		if path := fieldString(entry, "poster_path"); path != "" {
			return tmdb.ImageURL(path, "w500")
		}
	}
	return ""
}
