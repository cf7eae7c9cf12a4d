package app

import (
	"path/filepath"
	"testing"

	"github.com/lunaray/txt2epub/internal/chapter"
)

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("TXT_SOURCE_FOLDER", "/env/src")
	t.Setenv("EPUB_DEST_FOLDER", "/env/out")
	t.Setenv("EPUB_AUTHOR", "EnvAuthor")
	t.Setenv("CHAPTER_DETECTION_METHOD", "Pattern_Only")
	t.Setenv("ENABLE_DOUBLE_EMPTY_LINE", "true")
	t.Setenv("ENABLE_CHAPTER_MARKER", "yes")
	t.Setenv("CHAPTER_MARKER", "##")
	t.Setenv("BARK_PUSH", "https://bark.example/key")

	cfg := Config{Author: "FlagAuthor"}
	ApplyEnvToConfig(&cfg)

	if cfg.SourceDir != "/env/src" || cfg.OutputDir != "/env/out" {
		t.Fatalf("dirs = %q %q", cfg.SourceDir, cfg.OutputDir)
	}
	// Explicit values win over env.
	if cfg.Author != "FlagAuthor" {
		t.Fatalf("author = %q", cfg.Author)
	}
	if cfg.Detection.Method != chapter.MethodPatternOnly {
		t.Fatalf("method = %q", cfg.Detection.Method)
	}
	if !cfg.Detection.EnableDoubleEmptyLine || !cfg.Detection.EnableMarker {
		t.Fatalf("booleans not applied: %+v", cfg.Detection)
	}
	if cfg.Detection.Marker != "##" {
		t.Fatalf("marker = %q", cfg.Detection.Marker)
	}
	if cfg.BarkURL != "https://bark.example/key" {
		t.Fatalf("bark = %q", cfg.BarkURL)
	}
}

func TestLoadAndMergeFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
source: /data/txts
output: /data/epubs
author: Luna
detection:
  method: auto
  doubleEmptyLine: true
  marker:
    enable: true
    value: "#"
merge: true
pdf:
  enable: true
  font: /fonts/serif.ttf
bark: https://bark.example/key
`)

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	cfg := Config{OutputDir: "/flag/out"}
	MergeFileConfig(&cfg, fc)

	if cfg.SourceDir != "/data/txts" {
		t.Fatalf("source = %q", cfg.SourceDir)
	}
	if cfg.OutputDir != "/flag/out" { // flag wins
		t.Fatalf("output = %q", cfg.OutputDir)
	}
	if cfg.Detection.Method != chapter.MethodAuto || !cfg.Detection.EnableDoubleEmptyLine {
		t.Fatalf("detection = %+v", cfg.Detection)
	}
	if !cfg.Detection.EnableMarker || cfg.Detection.Marker != "#" {
		t.Fatalf("marker = %+v", cfg.Detection)
	}
	if !cfg.MergeMode || !cfg.PDFEnable || cfg.PDFFontPath != "/fonts/serif.ttf" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := cfg.Detection.Validate(); err != nil {
		t.Fatalf("merged config invalid: %v", err)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "source: [unclosed")
	if _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
