package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
)

// ErrFileExists is returned when the target exists and the policy is "fail".
var ErrFileExists = errors.New("output file already exists")

// ErrNameTooLong is returned when no renamed candidate fits the filesystem name limit.
var ErrNameTooLong = errors.New("output file name too long")

// maxNameBytes is the per-component name limit on ext4 and APFS.
const maxNameBytes = 255

var (
	reUnsafe     = regexp.MustCompile(`[<>:"/\\|?*]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Extension returns the file extension for an output format.
func Extension(format string) string {
	if format == config.FormatDocx {
		return ".docx"
	}
	return ".md"
}

// SanitizeTitle strips filesystem-hostile characters and caps the length in runes.
// kebab lowercases and joins words with dashes.
func SanitizeTitle(title string, kebab bool, maxLen int) string {
	safe := strings.TrimSpace(reUnsafe.ReplaceAllString(title, ""))
	if kebab {
		safe = reWhitespace.ReplaceAllString(strings.ToLower(safe), "-")
	}
	if r := []rune(safe); maxLen > 0 && len(r) > maxLen {
		safe = string(r[:maxLen])
	}
	return safe
}

// Filename builds "<Title> Transcript.md" or "<title>-transcript.md".
func Filename(title string, kebab bool, maxLen int, format string) string {
	base := SanitizeTitle(title, kebab, maxLen)
	if base == "" {
		return "transcript" + Extension(format)
	}
	if kebab {
		return base + "-transcript" + Extension(format)
	}
	return base + " Transcript" + Extension(format)
}

// Resolve applies the collision policy to path. "rename" picks the first free
// "<stem> N<ext>" starting at 2.
func Resolve(path, policy string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return path, nil
	} else if err != nil {
		return "", fmt.Errorf("stat output: %w", err)
	}

	switch policy {
	case config.ConflictOverwrite:
		return path, nil
	case config.ConflictRename:
		ext := filepath.Ext(path)
		stem := strings.TrimSuffix(path, ext)
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s %d%s", stem, n, ext)
			if len(filepath.Base(candidate)) > maxNameBytes {
				return "", fmt.Errorf("%w: %s", ErrNameTooLong, candidate)
			}
			_, err := os.Stat(candidate)
			if errors.Is(err, os.ErrNotExist) {
				return candidate, nil
			}
			if err != nil {
				return "", fmt.Errorf("stat output: %w", err)
			}
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrFileExists, path)
	}
}
