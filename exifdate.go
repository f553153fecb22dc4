package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// =============================================================================
// Capture Date Resolution
// =============================================================================

// exifTimeLayout is the fixed timestamp format of the EXIF date fields.
// Go reference time: Mon Jan 2 15:04:05 MST 2006
const exifTimeLayout = "2006:01:02 15:04:05"

// timestampResolver attempts to produce a capture timestamp for one file.
// It reports false when the source it consults is absent or unreadable;
// that is a normal condition, not an error.
type timestampResolver func(path string) (time.Time, bool)

// defaultResolvers is the timestamp resolution policy, tried in order.
// The order matters: the embedded fields are not equally trustworthy, and
// filesystem time must never shadow a valid embedded capture tag (files get
// copied and touched long after capture).
var defaultResolvers = []timestampResolver{
	exifFieldResolver(exif.DateTimeOriginal),
	exifFieldResolver(exif.DateTime),
	modTimeResolver,
}

// resolveTimestamp determines the best available capture date for a file
// using the default policy. When every resolver fails it falls back to the
// current time and warns, since that breaks chronological ordering and
// usually means the file is corrupted.
func resolveTimestamp(path string) time.Time {
	return resolveWith(defaultResolvers, path)
}

// resolveWith runs the given resolvers in order and returns the first hit.
func resolveWith(resolvers []timestampResolver, path string) time.Time {
	for _, resolve := range resolvers {
		if t, ok := resolve(path); ok {
			return t
		}
	}
	fmt.Fprintf(os.Stderr, "  %s: no usable timestamp, falling back to current time\n", filepath.Base(path))
	return time.Now()
}

// exifFieldResolver returns a resolver reading one EXIF date field.
// Decode failures, a missing field, and an unparseable value all report
// false so the chain can fall through.
func exifFieldResolver(field exif.FieldName) timestampResolver {
	return func(path string) (time.Time, bool) {
		f, err := os.Open(path)
		if err != nil {
			return time.Time{}, false
		}
		defer f.Close()

		x, err := exif.Decode(f)
		if err != nil {
			return time.Time{}, false
		}

		tag, err := x.Get(field)
		if err != nil {
			return time.Time{}, false
		}
		s, err := tag.StringVal()
		if err != nil {
			return time.Time{}, false
		}

		t, err := parseExifTime(s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// modTimeResolver reads the file's last-modified time from disk.
func modTimeResolver(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// parseExifTime parses a "YYYY:MM:DD HH:MM:SS" value in local time,
// matching how cameras write the field (no zone information).
func parseExifTime(s string) (time.Time, error) {
	return time.ParseInLocation(exifTimeLayout, s, time.Local)
}
