package pretty

// Pass describes one fitting pass of RenderToWidth.
type Pass struct {
	N     int // 1-based pass number
	Limit int
	Width int // widest line of this pass's rendering

	// Fits reports whether the rendering is at most Limit wide. When it
	// does, the pass is the last one.
	Fits bool

	// Advanced reports whether the breaking step changed any group or break.
	// It is false when Fits is true, and on the final best-effort pass.
	Advanced bool
}
