// Package walker finds procedure workbooks in a directory tree.
package walker

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the suffix of procedure workbooks.
const Extension = ".xlsx"

// SkippedDir is the name of directories holding superseded procedures.
const SkippedDir = "old"

// Source is one workbook found under a root.
type Source struct {
	// Path is the full path of the workbook.
	Path string
	// Rel is Path relative to the root.
	Rel string
	// Dir is the directory of Rel, "." for the root itself.
	Dir string
}

// Output returns where the generated procedure goes under outRoot.
func (s Source) Output(outRoot string) string {
	return filepath.Join(outRoot, s.Dir, OutputName(filepath.Base(s.Path)))
}

// Discover returns every workbook under root sorted by path. Lock files
// (names containing "~") and anything below an "old" directory are skipped.
func Discover(root string) ([]Source, error) {
	var out []Source
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && d.Name() == SkippedDir {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, Extension) || strings.Contains(name, "~") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, Source{Path: path, Rel: rel, Dir: filepath.Dir(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rel < out[j].Rel })
	return out, nil
}

// OutputName derives the procedure file name from a workbook name: the text
// before the first '-', an underscore, then the next eight characters, with
// '-' replaced by '_'. "R-ADC-N210_Activate.xlsx" becomes "R_ADC_N210.pluto".
func OutputName(file string) string {
	base := strings.TrimSuffix(filepath.Base(file), Extension)
	head, rest, found := strings.Cut(base, "-")
	if !found {
		return strings.ReplaceAll(base, "-", "_") + ".pluto"
	}
	if r := []rune(rest); len(r) > 8 {
		rest = string(r[:8])
	}
	return strings.ReplaceAll(head+"_"+rest, "-", "_") + ".pluto"
}

// Dirs returns the distinct directories of sources in order of first
// appearance.
func Dirs(sources []Source) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, s := range sources {
		if !seen[s.Dir] {
			seen[s.Dir] = true
			dirs = append(dirs, s.Dir)
		}
	}
	return dirs
}
