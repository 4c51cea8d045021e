package output

import "context"

// Writer persists a rendered transcript document.
type Writer interface {
	// Write stores doc at path in the given format, after applying the
	// collision policy, and returns the path actually written.
	Write(ctx context.Context, doc, path, format, policy string) (string, error)
}
