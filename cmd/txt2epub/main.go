package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lunaray/txt2epub/internal/app"
	"github.com/lunaray/txt2epub/internal/chapter"
)

var version = "0.1.0"

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath string
		verbose    bool
		cfg        app.Config
		method     string
		marker     string
	)

	rootCmd := &cobra.Command{
		Use:   "txt2epub",
		Short: "Convert plain-text novels into EPUB books",
		Long: `txt2epub splits plain-text novels into titled chapters and packages
them as EPUB books.

Chapter boundaries are detected from heading conventions (第一章 / Chapter 1 /
1. / marker prefixes) with a blank-line fallback for texts that use no
headings at all. File encodings (UTF-8, GBK, Big5, UTF-16) are detected
automatically.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			cfg.Detection.Method = chapter.Method(strings.ToLower(method))
			cfg.Detection.Marker = marker
			if configPath != "" {
				fc, err := app.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				app.MergeFileConfig(&cfg, fc)
			}
			app.ApplyEnvToConfig(&cfg)
			if cfg.Detection.EnableMarker && cfg.Detection.Marker == "" {
				cfg.Detection.Marker = "#"
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	pf.StringVar(&method, "method", "", "Chapter detection method: auto, pattern_only, double_empty_line_only")
	pf.BoolVar(&cfg.Detection.EnableDoubleEmptyLine, "double-empty-line", false, "Treat two consecutive empty lines as a chapter break")
	pf.BoolVar(&cfg.Detection.EnableMarker, "marker", false, "Prefix chapter titles with the marker string")
	pf.StringVar(&marker, "marker-string", "", "Marker string prepended to chapter titles (default \"#\")")
	pf.StringVar(&cfg.Author, "author", "", "Book author metadata")
	pf.StringVar(&cfg.Publisher, "publisher", "", "Book publisher metadata")
	pf.StringVar(&cfg.CoverDir, "covers", "", "Folder with cover images named after books")
	pf.BoolVar(&cfg.PDFEnable, "pdf", false, "Also render each book as a flat PDF")
	pf.StringVar(&cfg.PDFFontPath, "pdf-font", "", "UTF-8 TTF font file for PDF output (required for CJK)")
	pf.StringVar(&cfg.BarkURL, "bark", "", "Bark push endpoint for completion notifications")

	rootCmd.AddCommand(convertCmd(&cfg))
	rootCmd.AddCommand(batchCmd(&cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd(cfg *app.Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <input.txt>",
		Short: "Convert a single text file to EPUB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			dest := output
			if dest == "" {
				base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
				dest = base + ".epub"
			}
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			n, err := a.ConvertFile(context.Background(), src, dest)
			if err != nil {
				return err
			}
			log.Info().Int("chapters", n).Str("out", dest).Msg("conversion complete")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output EPUB path (defaults to <input>.epub)")
	return cmd
}

func batchCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every text file under the source folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(*cfg)
			if err != nil {
				return err
			}
			sum, err := a.Run(context.Background())
			if err != nil {
				return err
			}
			log.Info().
				Int("converted", sum.Converted).
				Int("skipped", sum.Skipped).
				Int("failed", sum.Failed).
				Msg("batch run complete")
			if sum.Failed > 0 {
				return fmt.Errorf("%d task(s) failed", sum.Failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.SourceDir, "source", "", "Folder scanned for .txt files")
	cmd.Flags().StringVar(&cfg.OutputDir, "output", "", "Folder receiving .epub files")
	cmd.Flags().BoolVar(&cfg.MergeMode, "merge", false, "Merge subfolders with multiple .txt files into one book each")
	cmd.Flags().BoolVar(&cfg.Force, "force", false, "Reconvert even when the EPUB is up to date")
	return cmd
}
