package processor

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/output"
	"github.com/nguyentantai21042004/transcript-flow/internal/video"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	video    *video.Client
	renderer document.Renderer
	writer   output.Writer
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, renderer document.Renderer, writer output.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		video:    video.NewClient(cfg.YtDlp, exec, log),
		renderer: renderer,
		writer:   writer,
		logger:   log,
	}
}
