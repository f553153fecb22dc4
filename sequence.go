package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// =============================================================================
// Deterministic Photo Sequencer
// =============================================================================

// photoRecord is the transient per-file state of one sequencing pass.
// Records are built while scanning a category directory and discarded once
// the rename pass completes.
type photoRecord struct {
	path  string    // current absolute path
	name  string    // current base name
	ext   string    // extension, as found on disk
	taken time.Time // resolved capture timestamp
}

// renamedPhoto describes one rename performed by the sequencer,
// for progress reporting and manifest tracking.
type renamedPhoto struct {
	OldName string
	NewName string
	Path    string // path after the rename
	Taken   time.Time
}

// listPhotos returns the image files in dir, in directory listing order
// (os.ReadDir sorts by name, which keeps tie-breaking deterministic across
// runs). Hidden files, subdirectories, and non-image extensions are skipped.
func listPhotos(dir string, allowed map[string]bool) ([]photoRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	records := make([]photoRecord, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !allowed[strings.ToLower(ext)] {
			continue
		}
		records = append(records, photoRecord{
			path: filepath.Join(dir, e.Name()),
			name: e.Name(),
			ext:  ext,
		})
	}
	return records, nil
}

// sequenceNames assigns the date-ordered name for each record, in order.
// Names follow "YYYY-MM-DD-NNN.ext" where NNN is a 3-digit counter that
// resets to 1 at every date boundary and increments while consecutive
// records share a date. The records must already be sorted by timestamp.
// Extensions are lower-cased; an empty extension defaults to ".jpg".
func sequenceNames(records []photoRecord) []string {
	names := make([]string, len(records))

	var currentDate string
	counter := 0

	for i, rec := range records {
		date := rec.taken.Format("2006-01-02")
		if date != currentDate {
			currentDate = date
			counter = 0
		}
		counter++

		ext := strings.ToLower(rec.ext)
		if ext == "" {
			ext = ".jpg"
		}
		names[i] = fmt.Sprintf("%s-%03d%s", date, counter, ext)
	}
	return names
}

// sequenceCategory renames the photos in one category directory to their
// date-ordered names and returns the renames performed.
//
// The pass is a single sweep: scan, resolve timestamps, stable-sort,
// rename with the per-date counter. Failures are per-file, never
// batch-fatal: a file whose target name is taken by a different file is
// skipped with a report, as is a failed rename. A file already bearing its
// computed name is left alone, which makes the pass idempotent on
// unchanged input.
func sequenceCategory(dir string, allowed map[string]bool, resolve func(string) time.Time) ([]renamedPhoto, error) {
	records, err := listPhotos(dir, allowed)
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].taken = resolve(records[i].path)
	}

	// Stable: equal timestamps keep listing order, so repeated runs on
	// unchanged input produce identical output.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].taken.Before(records[j].taken)
	})

	names := sequenceNames(records)

	var renamed []renamedPhoto
	for i, rec := range records {
		newName := names[i]
		if rec.name == newName {
			continue
		}

		dst := filepath.Join(dir, newName)
		if _, err := os.Stat(dst); err == nil {
			fmt.Fprintf(os.Stderr, "  %s: target %s already exists, skipping\n", rec.name, newName)
			continue
		}

		if err := os.Rename(rec.path, dst); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: rename failed: %v\n", rec.name, err)
			continue
		}

		fmt.Printf("  %s (%s) → %s\n", rec.name, rec.taken.Format("2006-01-02 15:04"), newName)
		renamed = append(renamed, renamedPhoto{
			OldName: rec.name,
			NewName: newName,
			Path:    dst,
			Taken:   rec.taken,
		})
	}

	return renamed, nil
}

// sequenceAll runs the sequencer over every category subdirectory of
// photosDir, in sorted order, and returns the renames keyed by category.
// Per-category scan failures are reported and do not stop the other
// categories.
func sequenceAll(photosDir string, allowed map[string]bool, resolve func(string) time.Time) (map[string][]renamedPhoto, int, error) {
	categories, err := listCategoryDirs(photosDir)
	if err != nil {
		return nil, 0, err
	}

	renamed := make(map[string][]renamedPhoto)
	total := 0
	for _, category := range categories {
		fmt.Printf("Processing: %s\n", category)

		r, err := sequenceCategory(filepath.Join(photosDir, category), allowed, resolve)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", category, err)
			continue
		}
		if len(r) > 0 {
			renamed[category] = r
		}
		total += len(r)
		fmt.Println()
	}

	return renamed, total, nil
}

// listCategoryDirs returns the category subdirectories of photosDir,
// sorted by name. Hidden directories are not categories.
func listCategoryDirs(photosDir string) ([]string, error) {
	entries, err := os.ReadDir(photosDir)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			categories = append(categories, e.Name())
		}
	}
	sort.Strings(categories)
	return categories, nil
}
