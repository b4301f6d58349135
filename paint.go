package arbor

// Painter is the drawing surface widgets paint into. Draw calls arrive in
// pre-order of the tree; implementations do no batching or damage tracking
// on the engine's behalf.
type Painter interface {
	// FillRect fills r with a solid color.
	FillRect(r Rect, c Color)
	// Clear erases the whole surface.
	Clear()
	// Present makes the frame painted since the last Clear visible.
	Present()
	// Size returns the extent of the surface.
	Size() Size
}
