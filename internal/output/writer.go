package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
)

// maxReserveAttempts bounds retries when a concurrent writer takes the renamed slot first.
const maxReserveAttempts = 10

func (w *implWriter) Write(ctx context.Context, doc, path, format, policy string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	f, target, err := reserve(path, policy)
	if err != nil {
		return "", err
	}
	if target != path {
		w.logger.Info(ctx, "%s exists, writing %s instead", path, target)
	}

	if format == config.FormatDocx {
		err = markdownToDocx(doc, f)
	} else {
		_, err = f.WriteString(doc)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write %s: %w", format, err)
	}

	w.logger.Info(ctx, "Saved transcript: %s", target)
	return target, nil
}

// reserve resolves path under policy and creates the target. Except under
// "overwrite" the create is exclusive, so two writers never share a name.
func reserve(path, policy string) (*os.File, string, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if policy == config.ConflictOverwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		target, err := Resolve(path, policy)
		if err != nil {
			return nil, "", err
		}
		f, err := os.OpenFile(target, flags, 0644)
		if err == nil {
			return f, target, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create output: %w", err)
		}
		if policy != config.ConflictRename {
			return nil, "", fmt.Errorf("%w: %s", ErrFileExists, target)
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrFileExists, path)
}

// CopyToClipboard puts the rendered document on the system clipboard.
func CopyToClipboard(doc string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(doc); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
