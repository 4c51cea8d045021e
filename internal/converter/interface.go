package converter

import "context"

// Converter renders caption files that already exist on disk into transcript documents.
type Converter interface {
	Convert(ctx context.Context, captionPath, destDir string) (string, error)
	ConvertAll(ctx context.Context, srcDir, destDir string) error
}
