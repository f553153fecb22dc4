// Photo Site - tools for a static personal photography website
//
// The tool operates on a site root containing a photos/ directory with one
// subdirectory per category. It sequences photos by capture date, manages
// category directories, generates thumbnails and gallery pages for a
// static-site generator, tracks renames in a manifest CSV, and stages the
// output tree for publishing.
//
// Usage:
//
//	photo-site                    # Sequence photos by capture date
//	photo-site -m                 # Sequence and update the manifest
//	photo-site -g                 # Generate gallery pages and thumbnails
//	photo-site -t                 # Generate thumbnails only
//	photo-site -deploy            # Stage output tree and publish
//	photo-site -init              # Create category directories
//	photo-site -list              # List categories with photo counts
//	photo-site -move f -into cat  # Move a photo into a category
//	photo-site --root /path       # Use a custom site root
//
// Expected directory structure:
//
//	site/
//	├── photos/            <- One subdirectory per category
//	│   ├── nature/
//	│   └── urban/
//	├── output/            <- Generated thumbnails, galleries, staged site
//	└── photo-site.yaml    <- Optional configuration
//
// Photos are renamed to YYYY-MM-DD-NNN.ext, sorted by capture date within
// each category, with the counter restarting at each new date. Capture
// dates come from EXIF metadata when present, the file's modification time
// otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// manifestFileName is the rename-tracking CSV, kept in the site root.
const manifestFileName = "photo-site-manifest.csv"

func main() {
	sequenceFlag := flag.Bool("sequence", false, "Sequence photos by capture date (default action)")
	sequenceShort := flag.Bool("s", false, "Sequence photos (short for --sequence)")
	manifestFlag := flag.Bool("update-manifest", false, "Update the manifest CSV after sequencing")
	manifestShort := flag.Bool("m", false, "Update manifest (short for --update-manifest)")
	thumbsFlag := flag.Bool("thumbnails", false, "Generate thumbnails")
	thumbsShort := flag.Bool("t", false, "Generate thumbnails (short for --thumbnails)")
	galleriesFlag := flag.Bool("galleries", false, "Generate gallery pages and thumbnails")
	galleriesShort := flag.Bool("g", false, "Generate galleries (short for --galleries)")
	deployFlag := flag.Bool("deploy", false, "Stage the output tree and run the deploy command")
	initFlag := flag.Bool("init", false, "Create the category directory structure")
	listFlag := flag.Bool("list", false, "List categories with photo counts")
	rootDir := flag.String("root", "", "Site root directory (default: current directory)")
	categoriesArg := flag.String("categories", "nature,urban,people,animals,food,travel,architecture,sunset",
		"Comma-separated category names for --init")
	moveArg := flag.String("move", "", "Move a photo into the category given by --into")
	copyArg := flag.String("copy", "", "Copy a photo into the category given by --into")
	intoArg := flag.String("into", "", "Target category for --move/--copy")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Photo Site - tools for a static photography website\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                       # Sequence photos by capture date\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -m                    # Sequence and update manifest\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -g                    # Generate galleries\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -deploy               # Stage and publish\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -init                 # Create category folders\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -move a.jpg -into urban\n", os.Args[0])
	}

	flag.Parse()

	root := *rootDir
	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting current directory:", err)
			os.Exit(1)
		}
	}

	cfg, err := loadConfig(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	photosDir := filepath.Join(root, cfg.PhotosDir)
	outputDir := filepath.Join(root, cfg.OutputDir)

	// Init creates the photos directory itself, so it skips the existence
	// check every other action needs.
	if *initFlag {
		if err := createCategories(photosDir, strings.Split(*categoriesArg, ",")); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	if _, err := os.Stat(photosDir); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: photos directory not found at %s\n", photosDir)
		os.Exit(1)
	}

	if *listFlag {
		if err := listCategories(photosDir, cfg.allowedExts(), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	if *moveArg != "" || *copyArg != "" {
		src, asCopy := *moveArg, false
		if *copyArg != "" {
			src, asCopy = *copyArg, true
		}
		if *intoArg == "" {
			fmt.Fprintln(os.Stderr, "Error: --move/--copy requires --into <category>")
			os.Exit(1)
		}
		if err := movePhoto(src, filepath.Join(photosDir, *intoArg), asCopy); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	doSequence := *sequenceFlag || *sequenceShort
	doThumbs := *thumbsFlag || *thumbsShort
	doGalleries := *galleriesFlag || *galleriesShort
	doManifest := *manifestFlag || *manifestShort

	// With no action flags at all, sequencing is the default.
	if !doSequence && !doThumbs && !doGalleries && !*deployFlag {
		doSequence = true
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Photo Site")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Photos: %s\n", photosDir)
	fmt.Printf("Output: %s\n\n", outputDir)

	if doSequence {
		renamed, total, err := sequenceAll(photosDir, cfg.allowedExts(), resolveTimestamp)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("=== Complete ===")
		fmt.Printf("Total photos renamed: %d\n", total)

		if doManifest && total > 0 {
			if err := updateManifest(filepath.Join(root, manifestFileName), renamed); err != nil {
				fmt.Fprintln(os.Stderr, "Error updating manifest:", err)
			}
		}
	}

	if doThumbs && !doGalleries && !*deployFlag {
		n, err := generateThumbnails(photosDir, outputDir, &cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Created %d thumbnails\n", n)
	}

	if doGalleries && !*deployFlag {
		n, err := generateGalleries(photosDir, outputDir, &cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d galleries\n", n)
	}

	if *deployFlag {
		if err := runDeploy(photosDir, outputDir, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	fmt.Println("\nDone!")
}
