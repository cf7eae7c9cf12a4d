package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/lunaray/txt2epub/internal/chapter"
)

// FileConfig is the YAML configuration schema. Nested sections map
// naturally onto flags and environment variables.
type FileConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Covers string `yaml:"covers"`

	Author    string `yaml:"author"`
	Publisher string `yaml:"publisher"`

	Detection struct {
		Method          string `yaml:"method"`
		DoubleEmptyLine *bool  `yaml:"doubleEmptyLine"`
		Marker          struct {
			Enable bool   `yaml:"enable"`
			Value  string `yaml:"value"`
		} `yaml:"marker"`
	} `yaml:"detection"`

	Merge *bool `yaml:"merge"`
	Force bool  `yaml:"force"`

	PDF struct {
		Enable bool   `yaml:"enable"`
		Font   string `yaml:"font"`
	} `yaml:"pdf"`

	Bark string `yaml:"bark"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("app: read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("app: parse config file %s: %w", path, err)
	}
	return fc, nil
}

// MergeFileConfig fills unset fields of cfg from fc. Explicit cfg values
// (from flags) take precedence over the file.
func MergeFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = fc.Source
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.CoverDir == "" {
		cfg.CoverDir = fc.Covers
	}
	if cfg.Author == "" {
		cfg.Author = fc.Author
	}
	if cfg.Publisher == "" {
		cfg.Publisher = fc.Publisher
	}
	if cfg.Detection.Method == "" && fc.Detection.Method != "" {
		cfg.Detection.Method = chapter.Method(fc.Detection.Method)
	}
	if fc.Detection.DoubleEmptyLine != nil {
		cfg.Detection.EnableDoubleEmptyLine = *fc.Detection.DoubleEmptyLine
	}
	if fc.Detection.Marker.Enable {
		cfg.Detection.EnableMarker = true
	}
	if cfg.Detection.Marker == "" {
		cfg.Detection.Marker = fc.Detection.Marker.Value
	}
	if fc.Merge != nil {
		cfg.MergeMode = *fc.Merge
	}
	if fc.Force {
		cfg.Force = true
	}
	if fc.PDF.Enable {
		cfg.PDFEnable = true
	}
	if cfg.PDFFontPath == "" {
		cfg.PDFFontPath = fc.PDF.Font
	}
	if cfg.BarkURL == "" {
		cfg.BarkURL = fc.Bark
	}
}
