package main

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG inputs are re-encoded as JPEG thumbnails
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// =============================================================================
// Thumbnail Generation
// =============================================================================

// createThumbnail writes a JPEG thumbnail of src to dst, fitted inside a
// size×size bounding box with the aspect ratio preserved.
func createThumbnail(src, dst string, size uint, quality int) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return out.Close()
}

// generateCategoryThumbnails ensures every photo in one category directory
// has a thumbnail under <outputDir>/thumbnails/<category>/. Existing
// thumbnails are left alone; per-file failures are reported and skipped.
// Returns the number of thumbnails created.
func generateCategoryThumbnails(categoryDir, outputDir, category string, cfg *Config) (int, error) {
	records, err := listPhotos(categoryDir, cfg.allowedExts())
	if err != nil {
		return 0, err
	}

	thumbsDir := filepath.Join(outputDir, "thumbnails", category)
	created := 0
	for _, rec := range records {
		dst := filepath.Join(thumbsDir, rec.name)
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		if err := createThumbnail(rec.path, dst, uint(cfg.Thumbnail.Size), cfg.Thumbnail.Quality); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: thumbnail failed: %v\n", rec.name, err)
			continue
		}
		fmt.Printf("  Created thumbnail: %s/%s\n", category, rec.name)
		created++
	}
	return created, nil
}

// generateThumbnails runs thumbnail generation for every category and
// returns the total created.
func generateThumbnails(photosDir, outputDir string, cfg *Config) (int, error) {
	categories, err := listCategoryDirs(photosDir)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, category := range categories {
		n, err := generateCategoryThumbnails(filepath.Join(photosDir, category), outputDir, category, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", category, err)
			continue
		}
		total += n
	}
	return total, nil
}
