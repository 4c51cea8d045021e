package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
	"github.com/nguyentantai21042004/transcript-flow/internal/video"
)

const testCaptions = "1\n00:00:00,000 --> 00:00:02,000\nHello\n\n" +
	"2\n00:00:02,000 --> 00:00:04,000\nworld\n\n" +
	"3\n00:00:09,000 --> 00:00:10,000\nAgain\n"

// fakeTools stands in for yt-dlp and parakeet-mlx, writing the files they would.
type fakeTools struct {
	info        string
	skipAudio   bool
	skipCaption bool
	calls       []string
}

func argAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func hasArg(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func (f *fakeTools) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))

	switch {
	case name == "yt-dlp" && hasArg(args, "--dump-json"):
		return f.info, nil
	case name == "yt-dlp":
		if f.skipAudio {
			return "", nil
		}
		return "", os.WriteFile(argAfter(args, "-o"), []byte("RIFF"), 0644)
	case name == "parakeet-mlx":
		if f.skipCaption {
			return "", nil
		}
		return "", os.WriteFile(filepath.Join(argAfter(args, "--output-dir"), "audio.srt"), []byte(testCaptions), 0644)
	}
	return "", errors.New("unexpected command " + name)
}

func (f *fakeTools) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func newTestProcessor(t *testing.T, tools *fakeTools) Processor {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	clock := document.FixedClock(time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC))
	return New(cfg, tools, document.New(clock), output.New(logger.Nop()), logger.Nop())
}

func TestProcessParagraphs(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo Talk", "duration": 65}`}
	p := newTestProcessor(t, tools)
	outDir := t.TempDir()

	path, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: outDir})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if want := filepath.Join(outDir, "Demo Talk Transcript.md"); path != want {
		t.Errorf("Process() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	for _, want := range []string{
		"# Transcript: Demo Talk\n",
		"**Source:** https://youtu.be/abc\n",
		"**Duration:** 1:05\n",
		"**Transcribed:** 2026-03-07\n",
		"## Transcript\n\nHello world\n\nAgain\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestProcessTimestampsKebab(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo Talk", "duration": 65}`}
	p := newTestProcessor(t, tools)
	outDir := t.TempDir()

	path, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: outDir, Timestamps: true, Kebab: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if filepath.Base(path) != "demo-talk-transcript.md" {
		t.Errorf("Process() file = %q, want %q", filepath.Base(path), "demo-talk-transcript.md")
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "[0:00] Hello\n\n[0:02] world\n\n[0:09] Again\n") {
		t.Errorf("document missing timestamp lines:\n%s", data)
	}
}

func TestProcessRejectsNonYouTubeURL(t *testing.T) {
	tools := &fakeTools{}
	p := newTestProcessor(t, tools)

	_, err := p.Process(context.Background(), "https://vimeo.com/1", Options{OutputDir: t.TempDir()})
	if !errors.Is(err, video.ErrNotYouTubeURL) {
		t.Errorf("Process() error = %v, want ErrNotYouTubeURL", err)
	}
	if len(tools.calls) != 0 {
		t.Errorf("no tools should run, got %v", tools.calls)
	}
}

func TestProcessExistingOutputFailsBeforeDownload(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo Talk", "duration": 65}`}
	p := newTestProcessor(t, tools)
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "Demo Talk Transcript.md"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: outDir})
	if !errors.Is(err, output.ErrFileExists) {
		t.Fatalf("Process() error = %v, want ErrFileExists", err)
	}
	if len(tools.calls) != 1 {
		t.Errorf("only the metadata fetch should run, got %v", tools.calls)
	}
}

func TestProcessMissingAudio(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo"}`, skipAudio: true}
	p := newTestProcessor(t, tools)

	_, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: t.TempDir()})
	if !errors.Is(err, ErrNoAudio) {
		t.Errorf("Process() error = %v, want ErrNoAudio", err)
	}
}

func TestProcessMissingCaptions(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo"}`, skipCaption: true}
	p := newTestProcessor(t, tools)

	_, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: t.TempDir()})
	if !errors.Is(err, ErrNoCaptions) {
		t.Errorf("Process() error = %v, want ErrNoCaptions", err)
	}
}

func TestProcessCleansWorkDir(t *testing.T) {
	tools := &fakeTools{info: `{"title": "Demo"}`}
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	p := New(cfg, tools, document.New(nil), output.New(logger.Nop()), logger.Nop())

	if _, err := p.Process(context.Background(), "https://youtu.be/abc", Options{OutputDir: t.TempDir()}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir not cleaned, found %d entries", len(entries))
	}
}
