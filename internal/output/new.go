package output

import "github.com/nguyentantai21042004/transcript-flow/internal/logger"

type implWriter struct {
	logger logger.Logger
}

// New creates a Writer.
func New(log logger.Logger) Writer {
	return &implWriter{logger: log}
}
