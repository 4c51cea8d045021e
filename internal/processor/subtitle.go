package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findFile returns the first file in dir (by name) with the given extension, or "".
func findFile(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dir %s: %w", dir, err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			matches = append(matches, e.Name())
		}
	}
	if len(matches) == 0 {
		return "", nil
	}

	sort.Strings(matches)
	return filepath.Join(dir, matches[0]), nil
}

// listDir names the entries of dir, for diagnostics.
func listDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
