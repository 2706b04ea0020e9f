package replay

// CurrentVersion is written into every new recording
const CurrentVersion = "2.0"

// Press is one recorded pointer press
type Press struct {
	X int   `json:"x"`
	Y int   `json:"y"`
	M uint8 `json:"m,omitempty"` // Modifier bits
}

// FrameInput records input for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	DT float64 `json:"dt"`          // Delta time in seconds
	P  []Press `json:"p,omitempty"` // Pointer presses
	Q  bool    `json:"q,omitempty"` // Quit
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Boxes     int          `json:"boxes"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
