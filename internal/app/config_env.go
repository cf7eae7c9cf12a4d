package app

import (
	"os"
	"strings"

	"github.com/lunaray/txt2epub/internal/chapter"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. The variable names are the ones long-time users of the
// original cron-job deployment already have in their profiles, so they
// keep working. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = os.Getenv("TXT_SOURCE_FOLDER")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv("EPUB_DEST_FOLDER")
	}
	if cfg.CoverDir == "" {
		cfg.CoverDir = os.Getenv("COVER_DIR")
	}
	if cfg.Author == "" {
		cfg.Author = os.Getenv("EPUB_AUTHOR")
	}
	if cfg.Publisher == "" {
		cfg.Publisher = os.Getenv("EPUB_PUBLISHER")
	}
	if cfg.BarkURL == "" {
		cfg.BarkURL = os.Getenv("BARK_PUSH")
	}

	if cfg.Detection.Method == "" {
		if v := strings.ToLower(strings.TrimSpace(os.Getenv("CHAPTER_DETECTION_METHOD"))); v != "" {
			cfg.Detection.Method = chapter.Method(v)
		}
	}
	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Detection.EnableDoubleEmptyLine, "ENABLE_DOUBLE_EMPTY_LINE")
	setBool(&cfg.Detection.EnableMarker, "ENABLE_CHAPTER_MARKER")
	setBool(&cfg.MergeMode, "ENABLE_MERGE_MODE")
	if cfg.Detection.Marker == "" {
		cfg.Detection.Marker = os.Getenv("CHAPTER_MARKER")
	}
}
