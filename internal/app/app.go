package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lunaray/txt2epub/internal/chapter"
	"github.com/lunaray/txt2epub/internal/epub"
	"github.com/lunaray/txt2epub/internal/notify"
	"github.com/lunaray/txt2epub/internal/pdfout"
	"github.com/lunaray/txt2epub/internal/textio"
)

// App drives conversion runs: scanning, decoding, chapter splitting,
// packaging and notification.
type App struct {
	cfg  Config
	bark *notify.Bark
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
}

// New validates the detection configuration and builds an App.
func New(cfg Config) (*App, error) {
	if err := cfg.Detection.Validate(); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, bark: &notify.Bark{BaseURL: cfg.BarkURL}}, nil
}

// ConvertFile converts a single text file to destPath and returns the
// number of chapters written.
func (a *App) ConvertFile(ctx context.Context, srcPath, destPath string) (int, error) {
	content, err := textio.ReadFile(srcPath)
	if err != nil {
		return 0, err
	}
	title := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	n, err := a.convert(ctx, title, content, destPath)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Run executes a batch conversion over the configured source folder.
// Individual task failures are logged and counted, never fatal; the
// error return covers setup problems only.
func (a *App) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := a.cfg.ValidateBatch(); err != nil {
		return sum, err
	}

	tasks, err := scanTasks(a.cfg.SourceDir, a.cfg.MergeMode)
	if err != nil {
		return sum, err
	}
	log.Info().Int("tasks", len(tasks)).Str("source", a.cfg.SourceDir).Msg("scan complete")
	if len(tasks) == 0 {
		return sum, nil
	}

	for _, t := range tasks {
		if ctx.Err() != nil {
			return sum, ctx.Err()
		}
		name := t.bookName()
		dest := filepath.Join(a.cfg.OutputDir, name+".epub")

		if !a.cfg.Force && upToDate(t, dest) {
			log.Info().Str("book", name).Msg("destination up to date; skipping")
			sum.Skipped++
			continue
		}

		var convErr error
		switch t.kind {
		case taskMerge:
			convErr = a.runMergeTask(ctx, t, name, dest)
		default:
			_, convErr = a.ConvertFile(ctx, t.path, dest)
		}
		if convErr != nil {
			log.Error().Err(convErr).Str("book", name).Msg("conversion failed")
			sum.Failed++
			continue
		}
		sum.Converted++
	}

	body := fmt.Sprintf("共 %d 个任务：成功 %d，跳过 %d，失败 %d",
		len(tasks), sum.Converted, sum.Skipped, sum.Failed)
	if err := a.bark.Push(ctx, "TXT转EPUB任务完成", body); err != nil {
		log.Warn().Err(err).Msg("notification failed")
	}
	return sum, nil
}

// runMergeTask joins a folder's files in natural order into one book.
func (a *App) runMergeTask(ctx context.Context, t task, name, dest string) error {
	files := append([]string(nil), t.files...)
	sortNatural(files)
	log.Info().Str("book", name).Strs("files", files).Msg("merging folder")

	var parts []string
	for _, f := range files {
		content, err := textio.ReadFile(filepath.Join(t.path, f))
		if err != nil {
			log.Warn().Err(err).Str("file", f).Msg("skipping unreadable file")
			continue
		}
		parts = append(parts, content)
	}
	if len(parts) == 0 {
		return fmt.Errorf("app: no readable files in %s", t.path)
	}
	_, err := a.convert(ctx, name, strings.Join(parts, "\n\n"), dest)
	return err
}

// convert runs the chapter engine over content and packages the result.
func (a *App) convert(ctx context.Context, title, content, destPath string) (int, error) {
	chapters, err := chapter.Split(content, a.cfg.Detection)
	if err != nil {
		return 0, err
	}
	if len(chapters) == 0 {
		return 0, fmt.Errorf("app: %s: input is empty, nothing to convert", title)
	}
	logOrdinalGaps(title, chapters)

	book := &epub.Book{
		Title:     title,
		Author:    a.cfg.Author,
		Publisher: a.cfg.Publisher,
		Chapters:  make([]epub.Chapter, len(chapters)),
	}
	for i, c := range chapters {
		book.Chapters[i] = epub.Chapter{Title: c.Title, Paragraphs: c.Paragraphs}
	}
	if cover, mediaType, ok := findCover(a.cfg.CoverDir, title); ok {
		book.Cover, book.CoverMediaType = cover, mediaType
	}

	if err := epub.WriteFile(book, destPath); err != nil {
		return 0, err
	}
	log.Info().Str("book", title).Int("chapters", len(chapters)).Str("out", destPath).Msg("wrote epub")

	if a.cfg.PDFEnable {
		pdfPath := strings.TrimSuffix(destPath, filepath.Ext(destPath)) + ".pdf"
		if err := pdfout.Write(title, chapters, pdfPath, pdfout.Options{FontPath: a.cfg.PDFFontPath}); err != nil {
			// The EPUB is the primary artifact; a PDF failure is logged
			// and does not fail the conversion.
			log.Warn().Err(err).Str("book", title).Msg("pdf export failed")
		} else {
			log.Info().Str("book", title).Str("out", pdfPath).Msg("wrote pdf")
		}
	}

	if err := a.bark.Push(ctx, "EPUB转换完成", fmt.Sprintf("书籍《%s》已生成，共 %d 章", title, len(chapters))); err != nil {
		log.Warn().Err(err).Msg("notification failed")
	}
	return len(chapters), nil
}

// logOrdinalGaps warns when heading numerals jump or repeat. The check
// is advisory; out-of-order source text is converted as-is.
func logOrdinalGaps(title string, chapters []chapter.Chapter) {
	prev := 0
	for _, c := range chapters {
		if c.Ordinal == 0 {
			continue
		}
		if prev != 0 && c.Ordinal != prev+1 {
			log.Warn().Str("book", title).Int("from", prev).Int("to", c.Ordinal).
				Msg("chapter numbering is not sequential")
		}
		prev = c.Ordinal
	}
}

// upToDate reports whether dest exists and is newer than every source
// file of the task.
func upToDate(t task, dest string) bool {
	di, err := os.Stat(dest)
	if err != nil {
		return false
	}
	newest := func(path string) bool {
		si, err := os.Stat(path)
		return err == nil && !si.ModTime().After(di.ModTime())
	}
	if t.kind == taskSingle {
		return newest(t.path)
	}
	for _, f := range t.files {
		if !newest(filepath.Join(t.path, f)) {
			return false
		}
	}
	return true
}

// findCover looks for <dir>/<book>.<ext> with a known image extension.
func findCover(dir, book string) ([]byte, string, bool) {
	if dir == "" {
		return nil, "", false
	}
	exts := []struct{ ext, mediaType string }{
		{".jpg", "image/jpeg"},
		{".jpeg", "image/jpeg"},
		{".png", "image/png"},
	}
	for _, e := range exts {
		data, err := os.ReadFile(filepath.Join(dir, book+e.ext))
		if err == nil {
			return data, e.mediaType, true
		}
	}
	return nil, "", false
}
