// Package replay stores and plays back recorded input sessions.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/younwookim/boxclicker/internal/application/system"
)

// ErrNoFrames is returned when a recording holds no frames
var ErrNoFrames = errors.New("no frames")

// ErrBadFrame is returned when a recorded frame time is unusable
var ErrBadFrame = errors.New("bad frame time")

// MaxFrameDT is the longest frame a recording may hold. The wall clock caps
// ticks well below it and a fixed step at 1 TPS reaches it exactly.
const MaxFrameDT = 1.0

// Replayer plays recorded frames back as a clock and an event source.
// Per frame, Tick is called before Poll: Tick reports the frame's delta time
// and Poll hands out its events and moves to the next frame. Once the frames
// run out Poll yields a single quit event.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &data, nil
}

// Validate checks that the recording has frames and that every frame time
// is finite and within [0, MaxFrameDT]
func (d *ReplayData) Validate() error {
	if len(d.Frames) == 0 {
		return ErrNoFrames
	}
	for i, f := range d.Frames {
		if math.IsNaN(f.DT) || f.DT < 0 || f.DT > MaxFrameDT {
			return fmt.Errorf("frame %d: dt %v: %w", i, f.DT, ErrBadFrame)
		}
	}
	return nil
}

// Tick returns the delta time of the current frame
func (r *Replayer) Tick() float64 {
	if r.frame >= len(r.data.Frames) {
		return 0
	}
	return r.data.Frames[r.frame].DT
}

// Poll returns the events of the current frame and advances
func (r *Replayer) Poll() []system.Event {
	if r.frame >= len(r.data.Frames) {
		r.frame++
		return []system.Event{system.Quit()}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	events := make([]system.Event, 0, len(fi.P)+1)
	for _, p := range fi.P {
		events = append(events, system.Event{
			Kind: system.EventPointerPress,
			X:    p.X,
			Y:    p.Y,
			Mods: system.Modifiers(p.M),
		})
	}
	if fi.Q {
		events = append(events, system.Quit())
	}
	return events
}

// Done returns true once every recorded frame has been handed out
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Boxes returns the number of boxes the session started with
func (r *Replayer) Boxes() int {
	return r.data.Boxes
}

// CreateTestReplayData creates replay data for testing: idle frames at a
// fixed step with a click at (x, y) on every frame listed in clickFrames
func CreateTestReplayData(frames int, dt float64, x, y int, clickFrames ...int) ReplayData {
	data := ReplayData{
		Version:   CurrentVersion,
		Seed:      12345,
		Boxes:     1,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	for _, f := range clickFrames {
		if f >= 0 && f < frames {
			data.Frames[f].P = append(data.Frames[f].P, Press{X: x, Y: y})
		}
	}

	return data
}
