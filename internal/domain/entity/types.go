package entity

// BoxID is a unique identifier for a box (never recycled)
type BoxID uint32

// MaxProgress is the progress value at which a box is cleared
const MaxProgress = 100

// Bounds is the playable area boxes bounce inside.
// MinY is raised above zero when a UI strip is reserved at the top.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the bounds
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Score counts successful hits. It only ever goes up.
type Score int

// Increment adds one point
func (s *Score) Increment() {
	*s++
}

// Value returns the score as a plain int
func (s Score) Value() int {
	return int(s)
}
