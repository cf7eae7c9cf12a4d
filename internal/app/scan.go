package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// taskKind distinguishes single-file conversions from merged folders.
type taskKind int

const (
	taskSingle taskKind = iota
	taskMerge
)

// task is one unit of work discovered by scanning the source folder.
type task struct {
	kind taskKind
	// path is the .txt file for single tasks, the folder for merges.
	path string
	// files lists the folder's .txt files (merge tasks only), unsorted.
	files []string
}

// scanTasks walks sourceDir for .txt files. With merge enabled, a
// subfolder holding more than one .txt file becomes one merge task;
// everything else converts file by file.
func scanTasks(sourceDir string, merge bool) ([]task, error) {
	var tasks []task
	root := filepath.Clean(sourceDir)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		var txts []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
				txts = append(txts, e.Name())
			}
		}
		if len(txts) == 0 {
			return nil
		}
		if merge && path != root && len(txts) > 1 {
			tasks = append(tasks, task{kind: taskMerge, path: path, files: txts})
			return filepath.SkipDir
		}
		for _, name := range txts {
			tasks = append(tasks, task{kind: taskSingle, path: filepath.Join(path, name)})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("app: scan %s: %w", sourceDir, err)
	}
	return tasks, nil
}

// bookName derives the book title for a task: the file's base name for
// single tasks; for merges, the common filename prefix when it is
// meaningful, otherwise the folder name.
func (t task) bookName() string {
	if t.kind == taskSingle {
		return strings.TrimSuffix(filepath.Base(t.path), filepath.Ext(t.path))
	}
	return commonBookName(t.files, t.path)
}

func commonBookName(files []string, dir string) string {
	prefix := commonPrefix(files)
	cleaned := strings.Trim(prefix, " _-")
	if len([]rune(cleaned)) < 2 {
		return filepath.Base(dir)
	}
	return cleaned
}

func commonPrefix(files []string) string {
	if len(files) == 0 {
		return ""
	}
	prefix := files[0]
	for _, f := range files[1:] {
		for !strings.HasPrefix(f, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// sortNatural orders file names so that part_2 comes before part_10.
func sortNatural(files []string) {
	sort.Slice(files, func(i, j int) bool { return naturalLess(files[i], files[j]) })
}

func naturalLess(a, b string) bool {
	ar, br := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if unicode.IsDigit(ar[i]) && unicode.IsDigit(br[j]) {
			an, ai := takeNumber(ar, i)
			bn, bj := takeNumber(br, j)
			if an != bn {
				return an < bn
			}
			i, j = ai, bj
			continue
		}
		if ar[i] != br[j] {
			return ar[i] < br[j]
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}

func takeNumber(r []rune, i int) (int, int) {
	n := 0
	for i < len(r) && unicode.IsDigit(r[i]) {
		n = n*10 + int(r[i]-'0')
		i++
	}
	return n, i
}
