package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/boxclicker/internal/application/replay"
	"github.com/younwookim/boxclicker/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed and box count for deterministic replay
func NewRecorder(seed int64, boxes int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.CurrentVersion,
			Seed:      seed,
			Boxes:     boxes,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's delta time and events
func (r *Recorder) RecordFrame(dt float64, events []system.Event) {
	if !r.recording {
		return
	}

	fi := replay.FrameInput{F: r.frame, DT: dt}
	for _, ev := range events {
		switch ev.Kind {
		case system.EventPointerPress:
			fi.P = append(fi.P, replay.Press{X: ev.X, Y: ev.Y, M: uint8(ev.Mods)})
		case system.EventQuit:
			fi.Q = true
		}
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("nothing to save: %w", replay.ErrNoFrames)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
