package app

import (
	"fmt"
	"os"

	"github.com/lunaray/txt2epub/internal/chapter"
)

// Config carries everything one conversion run needs. It is assembled
// once from flags, config file and environment, then read-only.
type Config struct {
	// SourceDir is scanned recursively for .txt files in batch runs.
	SourceDir string
	// OutputDir receives the generated .epub files.
	OutputDir string
	// CoverDir optionally holds cover images matched by book name.
	CoverDir string

	Author    string
	Publisher string

	// Detection configures the chapter engine.
	Detection chapter.Config

	// MergeMode folds subfolders holding multiple .txt files into one
	// book each.
	MergeMode bool
	// Force reconverts books whose EPUB is already up to date.
	Force bool

	// PDFEnable additionally renders each book as a flat PDF;
	// PDFFontPath points at a UTF-8 TTF font for CJK text.
	PDFEnable   bool
	PDFFontPath string

	// BarkURL is the optional push endpoint for completion
	// notifications.
	BarkURL string
}

// ValidateBatch checks the configuration for a batch run. The detection
// section is validated in both modes; directory requirements only apply
// to batch scanning.
func (c *Config) ValidateBatch() error {
	if err := c.Detection.Validate(); err != nil {
		return err
	}
	if c.SourceDir == "" {
		return fmt.Errorf("app: source directory is required")
	}
	info, err := os.Stat(c.SourceDir)
	if err != nil {
		return fmt.Errorf("app: source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("app: source path %s is not a directory", c.SourceDir)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("app: output directory is required")
	}
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("app: create output directory: %w", err)
	}
	return nil
}
