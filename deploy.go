package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// =============================================================================
// Deploy Staging
// =============================================================================

// stageOutput copies every category's photos into <outputDir>/photos/ and
// regenerates thumbnails and gallery pages, leaving a self-contained tree
// ready to publish. Photos already staged are skipped.
func stageOutput(photosDir, outputDir string, cfg *Config) error {
	categories, err := listCategoryDirs(photosDir)
	if err != nil {
		return err
	}

	allowed := cfg.allowedExts()
	staged := 0
	for _, category := range categories {
		records, err := listPhotos(filepath.Join(photosDir, category), allowed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", category, err)
			continue
		}

		destDir := filepath.Join(outputDir, "photos", category)
		for _, rec := range records {
			dst := filepath.Join(destDir, rec.name)
			if _, err := os.Stat(dst); err == nil {
				continue
			}
			if err := os.MkdirAll(destDir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", destDir, err)
			}
			if err := copyFile(rec.path, dst); err != nil {
				fmt.Fprintf(os.Stderr, "  %s: stage failed: %v\n", rec.name, err)
				continue
			}
			staged++
		}
	}
	fmt.Printf("Staged %d photos\n", staged)

	// Gallery generation ensures thumbnails for every non-empty category.
	if _, err := generateGalleries(photosDir, outputDir, cfg); err != nil {
		return err
	}
	return nil
}

// runDeploy stages the output tree and runs the configured publish command
// with the output directory appended as its last argument. Without a
// configured command, staging still happens and publishing is skipped.
func runDeploy(photosDir, outputDir string, cfg *Config) error {
	if err := stageOutput(photosDir, outputDir, cfg); err != nil {
		return err
	}

	if cfg.Deploy.Command == "" {
		fmt.Println("No deploy command configured; output staged, publish skipped")
		return nil
	}

	args := append(append([]string{}, cfg.Deploy.Args...), outputDir)
	fmt.Printf("Publishing with: %s %v\n", cfg.Deploy.Command, args)

	cmd := exec.Command(cfg.Deploy.Command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("deploy command: %w", err)
	}
	return nil
}
