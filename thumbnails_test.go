package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestJPEG writes a solid-color JPEG of the given size.
func writeTestJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 140, B: 160, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func decodeBounds(t *testing.T, path string) image.Rectangle {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds()
}

func TestCreateThumbnailFitsBoundingBox(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "big.jpg")
	dst := filepath.Join(dir, "thumb.jpg")
	writeTestJPEG(t, src, 800, 600)

	if err := createThumbnail(src, dst, 300, 85); err != nil {
		t.Fatalf("createThumbnail: %v", err)
	}

	b := decodeBounds(t, dst)
	if b.Dx() != 300 || b.Dy() != 225 {
		t.Errorf("thumbnail = %dx%d, want 300x225 (aspect preserved)", b.Dx(), b.Dy())
	}
}

func TestCreateThumbnailFromPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "shot.png")
	dst := filepath.Join(dir, "shot-thumb.jpg")
	writeTestPNG(t, src, 400, 400)

	if err := createThumbnail(src, dst, 100, 85); err != nil {
		t.Fatalf("createThumbnail: %v", err)
	}

	// Output must be a JPEG regardless of input format.
	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := jpeg.Decode(f); err != nil {
		t.Errorf("thumbnail is not a JPEG: %v", err)
	}
}

func TestCreateThumbnailRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "broken.jpg", "not an image")
	if err := createThumbnail(src, filepath.Join(dir, "out.jpg"), 100, 85); err == nil {
		t.Error("expected decode error for a non-image file")
	}
}

func TestGenerateCategoryThumbnailsSkipsExisting(t *testing.T) {
	root := t.TempDir()
	catDir := filepath.Join(root, "photos", "nature")
	if err := os.MkdirAll(catDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeTestJPEG(t, filepath.Join(catDir, "2024-01-01-001.jpg"), 640, 480)
	outputDir := filepath.Join(root, "output")

	cfg := defaultConfig()
	created, err := generateCategoryThumbnails(catDir, outputDir, "nature", &cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if created != 1 {
		t.Fatalf("first run created %d, want 1", created)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "thumbnails", "nature", "2024-01-01-001.jpg")); err != nil {
		t.Fatalf("thumbnail missing: %v", err)
	}

	created, err = generateCategoryThumbnails(catDir, outputDir, "nature", &cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if created != 0 {
		t.Errorf("second run created %d, want 0 (existing skipped)", created)
	}
}

func TestGenerateThumbnailsSurvivesBadFile(t *testing.T) {
	root := t.TempDir()
	catDir := filepath.Join(root, "photos", "mixed")
	if err := os.MkdirAll(catDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeTestJPEG(t, filepath.Join(catDir, "good.jpg"), 320, 240)
	writeFile(t, catDir, "bad.jpg", "corrupted")

	cfg := defaultConfig()
	created, err := generateThumbnails(filepath.Join(root, "photos"), filepath.Join(root, "output"), &cfg)
	if err != nil {
		t.Fatalf("generateThumbnails: %v", err)
	}
	if created != 1 {
		t.Errorf("created %d, want 1 (bad file skipped, not fatal)", created)
	}
}
