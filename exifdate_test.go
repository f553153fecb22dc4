package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

func TestParseExifTime(t *testing.T) {
	got, err := parseExifTime("2024:08:22 21:02:19")
	if err != nil {
		t.Fatalf("parseExifTime: %v", err)
	}
	want := time.Date(2024, 8, 22, 21, 2, 19, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseExifTimeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2024-08-22 21:02:19", "2024:13:99 25:61:61"} {
		if _, err := parseExifTime(s); err == nil {
			t.Errorf("parseExifTime(%q) succeeded, want error", s)
		}
	}
}

func TestResolveWithTriesResolversInOrder(t *testing.T) {
	t1 := time.Date(2022, 7, 4, 8, 30, 0, 0, time.Local)
	t2 := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)

	fail := func(string) (time.Time, bool) { return time.Time{}, false }
	first := func(string) (time.Time, bool) { return t1, true }
	second := func(string) (time.Time, bool) { return t2, true }

	if got := resolveWith([]timestampResolver{first, second}, "x"); !got.Equal(t1) {
		t.Errorf("earlier resolver must win: got %v, want %v", got, t1)
	}
	if got := resolveWith([]timestampResolver{fail, second}, "x"); !got.Equal(t2) {
		t.Errorf("chain must fall through: got %v, want %v", got, t2)
	}
}

func TestResolveWithFallsBackToWallClock(t *testing.T) {
	fail := func(string) (time.Time, bool) { return time.Time{}, false }

	before := time.Now()
	got := resolveWith([]timestampResolver{fail, fail}, "x")
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("wall-clock fallback returned %v, outside [%v, %v]", got, before, after)
	}
}

func TestModTimeResolver(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jpg", "x")
	want := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatal(err)
	}

	got, ok := modTimeResolver(path)
	if !ok {
		t.Fatal("modTimeResolver failed on an existing file")
	}
	if !got.Truncate(time.Second).Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestModTimeResolverMissingFile(t *testing.T) {
	if _, ok := modTimeResolver(filepath.Join(t.TempDir(), "missing.jpg")); ok {
		t.Error("modTimeResolver reported success for a missing file")
	}
}

func TestExifResolverRecoversFromNonImage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.jpg", "this is not a jpeg")

	resolve := exifFieldResolver(exif.DateTimeOriginal)
	if _, ok := resolve(path); ok {
		t.Error("EXIF resolver reported success for a non-image file")
	}
}

func TestExifResolverMissingFile(t *testing.T) {
	resolve := exifFieldResolver(exif.DateTimeOriginal)
	if _, ok := resolve(filepath.Join(t.TempDir(), "missing.jpg")); ok {
		t.Error("EXIF resolver reported success for a missing file")
	}
}
