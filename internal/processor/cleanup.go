package processor

import (
	"context"
	"fmt"
	"os"
)

// createWorkDir makes an isolated scratch directory for one run.
func (p *implProcessor) createWorkDir() (string, error) {
	if p.cfg.Paths.Temp != "" {
		if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}

	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return dir, nil
}

// cleanupWorkDir removes the scratch directory, logs warning if fails
func (p *implProcessor) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
