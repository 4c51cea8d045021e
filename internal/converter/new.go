package converter

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
)

type implConverter struct {
	cfg      *config.Config
	renderer document.Renderer
	writer   output.Writer
	logger   logger.Logger
}

// New creates a Converter. Converted caption files are moved to cfg.Paths.Archived.
func New(cfg *config.Config, renderer document.Renderer, writer output.Writer, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg,
		renderer: renderer,
		writer:   writer,
		logger:   log,
	}
}
