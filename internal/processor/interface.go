package processor

import "context"

// Processor turns a YouTube URL into a transcript document on disk.
type Processor interface {
	Process(ctx context.Context, url string, opts Options) (string, error)
}

// Options are the per-run choices, usually taken from command-line flags.
type Options struct {
	Timestamps bool
	Kebab      bool
	OutputPath string // explicit target; empty derives a name from the title
	OutputDir  string // directory for derived names
	Format     string
	OnConflict string
	Copy       bool
}
