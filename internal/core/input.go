package core

import "time"

// InputFrame is everything the player did during one frame.
type InputFrame struct {
	// Now is the wall-clock time of the frame. Session timing is derived from
	// it, never from frame counts.
	Now time.Time

	// Clicks holds pointer presses in logical coordinates, oldest first.
	Clicks []Vec
}

// Click records a pointer press at p.
func (f *InputFrame) Click(p Vec) {
	f.Clicks = append(f.Clicks, p)
}

// Clear drops recorded clicks for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Clicks = f.Clicks[:0]
}
