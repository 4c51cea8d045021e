package document

type implRenderer struct {
	clock Clock
}

// New creates a Renderer that dates documents with clock. A nil clock uses the wall clock.
func New(clock Clock) Renderer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &implRenderer{clock: clock}
}
