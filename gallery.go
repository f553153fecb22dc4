package main

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

// =============================================================================
// Gallery Generation
// =============================================================================

// The gallery generator relies on the sequencer's output contract: photo
// filenames sort lexicographically in chronological order, so pages list
// photos by name and never re-derive timestamps.

// galleryPhoto is one photo entry on a gallery page.
type galleryPhoto struct {
	Name     string // filename, also the thumbnail filename
	PhotoURL string // site-absolute URL of the full image
	ThumbURL string // site-absolute URL of the thumbnail
}

// galleryPage is the template context for one category's pages.
type galleryPage struct {
	Category string // directory name
	Info     CategoryInfo
	Date     string // generation date, YYYY-MM-DD
	Photos   []galleryPhoto
}

// categoryLink is one entry on the top-level category index.
type categoryLink struct {
	Category string
	Info     CategoryInfo
	Count    int
}

// markdownTemplate emits the Pelican-style gallery article for one category.
var markdownTemplate = template.Must(template.New("markdown").Parse(`Title: {{.Info.Name}} Photos
Date: {{.Date}}
Category: Photography
Tags: photos, gallery, {{.Category}}
Slug: {{.Category}}-gallery
Summary: {{.Info.Name}} photo collection

{{.Info.Name}} photographs.

<!-- PELICAN_END_SUMMARY -->

<div class="photo-gallery">
{{- range .Photos}}
  <div class="photo-item">
    <a href="{{.PhotoURL}}" class="lightbox-link">
      <img src="{{.ThumbURL}}" alt="{{$.Info.Name}}" loading="lazy" />
    </a>
  </div>
{{- end}}
</div>

<link rel="stylesheet" href="/theme/css/gallery.css" />
<script src="/theme/js/gallery.js"></script>
`))

// categoryIndexTemplate emits the standalone browsable page for one category.
// It lives next to the staged photos, so image sources are plain filenames.
var categoryIndexTemplate = htmltemplate.Must(htmltemplate.New("category").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Info.Name}}{{if .Info.Native}} ({{.Info.Native}}){{end}} | Photography</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .back-link { margin-bottom: 20px; }
        .photo-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 10px; }
        .photo-grid img { width: 100%; height: auto; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="back-link"><a href="../">&larr; Back to Categories</a></div>
    <h1>{{.Info.Name}}{{if .Info.Native}} <small>{{.Info.Native}}</small>{{end}}</h1>
    {{if .Info.Description}}<p>{{.Info.Description}}</p>{{end}}
    <div class="photo-grid">
{{- range .Photos}}
        <a href="{{.Name}}"><img src="{{.Name}}" alt="{{$.Info.Name}}" loading="lazy" /></a>
{{- end}}
    </div>
</body>
</html>
`))

// mainIndexTemplate emits the top-level category listing.
var mainIndexTemplate = htmltemplate.Must(htmltemplate.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Photo Categories</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .category-list { list-style: none; padding: 0; }
        .category-list li { margin: 10px 0; }
        .category-list a { text-decoration: none; color: #0066cc; font-size: 18px; }
        .category-list a:hover { text-decoration: underline; }
        .count { color: #888; font-size: 14px; }
    </style>
</head>
<body>
    <h1>Photo Categories</h1>
    <ul class="category-list">
{{- range .}}
        <li><a href="{{.Category}}/">{{.Info.Name}}{{if .Info.Native}} ({{.Info.Native}}){{end}}</a> <span class="count">{{.Count}} photos</span></li>
{{- end}}
    </ul>
</body>
</html>
`))

// buildGalleryPage collects the template context for one category.
func buildGalleryPage(photosDir, category string, cfg *Config) (galleryPage, error) {
	records, err := listPhotos(filepath.Join(photosDir, category), cfg.allowedExts())
	if err != nil {
		return galleryPage{}, err
	}

	page := galleryPage{
		Category: category,
		Info:     cfg.categoryInfo(category),
		Date:     time.Now().Format("2006-01-02"),
		Photos:   make([]galleryPhoto, 0, len(records)),
	}
	// listPhotos returns name order, which the sequencer made chronological.
	for _, rec := range records {
		page.Photos = append(page.Photos, galleryPhoto{
			Name:     rec.name,
			PhotoURL: "/photos/" + category + "/" + rec.name,
			ThumbURL: "/thumbnails/" + category + "/" + rec.name,
		})
	}
	return page, nil
}

// executable is satisfied by both text/template and html/template.
type executable interface {
	Execute(w io.Writer, data any) error
}

// writeTemplate renders t into path, creating parent directories.
func writeTemplate(path string, t executable, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return err
	}
	return f.Close()
}

// generateGalleries writes the markdown gallery and HTML index for every
// non-empty category, plus the top-level category index. Thumbnails are
// generated first so every page's thumbnail references resolve. Returns the
// number of category galleries written.
func generateGalleries(photosDir, outputDir string, cfg *Config) (int, error) {
	categories, err := listCategoryDirs(photosDir)
	if err != nil {
		return 0, err
	}

	var links []categoryLink
	written := 0

	for _, category := range categories {
		page, err := buildGalleryPage(photosDir, category, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", category, err)
			continue
		}
		if len(page.Photos) == 0 {
			continue
		}

		if _, err := generateCategoryThumbnails(filepath.Join(photosDir, category), outputDir, category, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: thumbnails: %v\n", category, err)
		}

		mdPath := filepath.Join(outputDir, "galleries", category+".md")
		if err := writeTemplate(mdPath, markdownTemplate, page); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: write gallery: %v\n", category, err)
			continue
		}

		indexPath := filepath.Join(outputDir, "photos", category, "index.html")
		if err := writeTemplate(indexPath, categoryIndexTemplate, page); err != nil {
			fmt.Fprintf(os.Stderr, "  %s: write index: %v\n", category, err)
			continue
		}

		fmt.Printf("  Generated gallery: %s (%d photos)\n", category, len(page.Photos))
		links = append(links, categoryLink{Category: category, Info: page.Info, Count: len(page.Photos)})
		written++
	}

	if len(links) > 0 {
		indexPath := filepath.Join(outputDir, "photos", "index.html")
		if err := writeTemplate(indexPath, mainIndexTemplate, links); err != nil {
			return written, fmt.Errorf("write category index: %w", err)
		}
	}

	return written, nil
}
