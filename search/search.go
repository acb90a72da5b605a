// Package search locates PDF manuals by partial filename across a
// configured list of folders.
package search

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Finder searches a fixed folder list for PDF files.
type Finder struct {
	fs      afero.Fs
	folders []string
}

// NewFinder returns a Finder over the OS filesystem. Folders that do
// not exist are silently skipped during searches.
func NewFinder(folders []string) *Finder {
	return &Finder{fs: afero.NewOsFs(), folders: folders}
}

// newFinderFS is like NewFinder with an explicit filesystem, for tests.
func newFinderFS(fs afero.Fs, folders []string) *Finder {
	return &Finder{fs: fs, folders: folders}
}

// Find returns the full paths of all PDFs whose filename contains
// partial, case-insensitively. Results keep the folder list order;
// within a folder they are sorted case-insensitively by name, so a
// given query always produces the same list.
func (f *Finder) Find(partial string) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(partial))
	if needle == "" {
		return nil, fmt.Errorf("search: empty query")
	}

	var matches []string
	for _, folder := range f.folders {
		entries, err := afero.ReadDir(f.fs, folder)
		if err != nil {
			// Not every configured folder exists on every machine.
			continue
		}

		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			lower := strings.ToLower(name)
			if strings.HasSuffix(lower, ".pdf") && strings.Contains(lower, needle) {
				names = append(names, name)
			}
		}
		sort.Slice(names, func(i, j int) bool {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})
		for _, name := range names {
			matches = append(matches, filepath.Join(folder, name))
		}
	}
	return matches, nil
}

// FindOne returns the single match for partial. With several matches
// the first is returned along with the full list, so a caller can
// offer a choice; with none, an error.
func (f *Finder) FindOne(partial string) (string, []string, error) {
	matches, err := f.Find(partial)
	if err != nil {
		return "", nil, err
	}
	if len(matches) == 0 {
		return "", nil, fmt.Errorf("search: no PDF found containing %q", partial)
	}
	return matches[0], matches, nil
}
