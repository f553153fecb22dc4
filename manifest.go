package main

import (
	"crypto/md5"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"
)

// =============================================================================
// Manifest Management
// =============================================================================

// manifestHeaders are the columns of the rename manifest CSV.
var manifestHeaders = []string{
	"filename",      // name assigned by the sequencer
	"category",      // category directory
	"original_name", // name before the rename
	"capture_date",  // resolved capture timestamp
	"file_size_bytes",
	"file_hash",   // MD5 of first 64KB
	"recorded_at", // when this row was written
}

// updateManifest appends the given renames to the manifest CSV at path,
// preserving existing rows. Rows are keyed by category/filename; the file
// is rewritten sorted by key for consistent diffs.
func updateManifest(path string, renamed map[string][]renamedPhoto) error {
	existing := make(map[string][]string)

	if f, err := os.Open(path); err == nil {
		reader := csv.NewReader(f)
		records, _ := reader.ReadAll()
		f.Close()

		for i, row := range records {
			if i == 0 || len(row) < 2 {
				continue
			}
			existing[row[1]+"/"+row[0]] = row
		}
	}

	newCount := 0
	now := time.Now().Format("2006-01-02 15:04:05")
	for category, photos := range renamed {
		for _, p := range photos {
			key := category + "/" + p.NewName
			if _, ok := existing[key]; ok {
				continue
			}

			size := int64(0)
			if info, err := os.Stat(p.Path); err == nil {
				size = info.Size()
			}

			existing[key] = []string{
				p.NewName,
				category,
				p.OldName,
				p.Taken.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d", size),
				fileHash(p.Path),
				now,
			}
			newCount++
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(manifestHeaders); err != nil {
		return err
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writer.Write(existing[k]); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	if newCount > 0 {
		fmt.Printf("Added %d entries to manifest\n", newCount)
	}
	return f.Close()
}

// fileHash computes an MD5 hash of the first 64KB of a file, enough for
// cheap duplicate detection without reading whole photos. Returns an empty
// string if the file cannot be read.
func fileHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, 65536)
	n, _ := f.Read(buf)
	h.Write(buf[:n])

	return fmt.Sprintf("%x", h.Sum(nil))
}
