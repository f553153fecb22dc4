package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// Category Management
// =============================================================================

// createCategories makes the photos directory plus one subdirectory per
// category name. Existing directories are reported and skipped.
func createCategories(photosDir string, names []string) error {
	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", photosDir, err)
	}

	created := 0
	skipped := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		path := filepath.Join(photosDir, name)

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("⊘ %s (already exists)\n", name)
			skipped++
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create category %s: %w", name, err)
		}
		fmt.Printf("✓ %s/\n", name)
		created++
	}

	fmt.Printf("\nCreated %d categories", created)
	if skipped > 0 {
		fmt.Printf(", skipped %d existing", skipped)
	}
	fmt.Println()
	return nil
}

// listCategories writes a table of categories with their photo counts to w.
func listCategories(photosDir string, allowed map[string]bool, w io.Writer) error {
	categories, err := listCategoryDirs(photosDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nPhoto Categories:")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	total := 0
	for _, category := range categories {
		records, err := listPhotos(filepath.Join(photosDir, category), allowed)
		if err != nil {
			fmt.Fprintf(w, "%-20s : error: %v\n", category, err)
			continue
		}
		fmt.Fprintf(w, "%-20s : %3d photos\n", category, len(records))
		total += len(records)
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%-20s : %3d photos\n", "Total", total)
	return nil
}

// movePhoto moves (or, with copy, copies) a single photo into a category
// directory. An existing file of the same name in the category is never
// overwritten. Moves fall back to copy+delete when rename fails across
// devices.
func movePhoto(photoPath, categoryDir string, asCopy bool) error {
	if _, err := os.Stat(photoPath); err != nil {
		return fmt.Errorf("photo %s: %w", photoPath, err)
	}
	if err := os.MkdirAll(categoryDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", categoryDir, err)
	}

	target := filepath.Join(categoryDir, filepath.Base(photoPath))
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s already exists in %s", filepath.Base(photoPath), filepath.Base(categoryDir))
	}

	if asCopy {
		if err := copyFile(photoPath, target); err != nil {
			return fmt.Errorf("copy %s: %w", photoPath, err)
		}
		fmt.Printf("Copied %s to %s\n", filepath.Base(photoPath), filepath.Base(categoryDir))
		return nil
	}

	if err := os.Rename(photoPath, target); err != nil {
		// Cross-device move: copy then delete.
		if err := copyFile(photoPath, target); err != nil {
			return fmt.Errorf("move %s: %w", photoPath, err)
		}
		if err := os.Remove(photoPath); err != nil {
			return fmt.Errorf("remove %s after copy: %w", photoPath, err)
		}
	}
	fmt.Printf("Moved %s to %s\n", filepath.Base(photoPath), filepath.Base(categoryDir))
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Close()
}
