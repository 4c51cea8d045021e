package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		kebab  bool
		format string
		want   string
	}{
		{"plain title", "Go Concurrency Patterns", false, config.FormatMarkdown, "Go Concurrency Patterns Transcript.md"},
		{"kebab title", "Go Concurrency  Patterns", true, config.FormatMarkdown, "go-concurrency-patterns-transcript.md"},
		{"unsafe characters", `What is "x"? A/B: <test>|*`, false, config.FormatMarkdown, "What is x AB test Transcript.md"},
		{"docx extension", "Talk", false, config.FormatDocx, "Talk Transcript.docx"},
		{"empty after sanitizing", `???`, false, config.FormatMarkdown, "transcript.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.title, tt.kebab, 80, tt.format); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleTruncatesRunes(t *testing.T) {
	title := strings.Repeat("é", 100)
	got := SanitizeTitle(title, false, 80)
	if n := len([]rune(got)); n != 80 {
		t.Errorf("SanitizeTitle() rune length = %d, want 80", n)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	free := filepath.Join(dir, "free.md")
	taken := filepath.Join(dir, "Talk Transcript.md")
	for _, p := range []string{taken, filepath.Join(dir, "Talk Transcript 2.md")} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		path    string
		policy  string
		want    string
		wantErr error
	}{
		{"free path any policy", free, config.ConflictFail, free, nil},
		{"overwrite", taken, config.ConflictOverwrite, taken, nil},
		{"rename skips taken numbers", taken, config.ConflictRename, filepath.Join(dir, "Talk Transcript 3.md"), nil},
		{"fail", taken, config.ConflictFail, "", ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.path, tt.policy)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveRenameNameTooLong(t *testing.T) {
	dir := t.TempDir()
	name := Filename(strings.Repeat("日", 80), false, 80, config.FormatMarkdown)
	if len(name) != 254 {
		t.Fatalf("len(name) = %d, want 254", len(name))
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := Resolve(path, config.ConflictRename)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, ErrNameTooLong) {
			t.Errorf("Resolve() error = %v, want ErrNameTooLong", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Resolve() did not return")
	}
}

func TestResolveStatError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// A path below a regular file fails with ENOTDIR, not ErrNotExist.
	if _, err := Resolve(filepath.Join(file, "Talk Transcript.md"), config.ConflictRename); err == nil {
		t.Error("Resolve() error = nil, want stat error")
	}
}
