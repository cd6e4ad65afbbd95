package editor

// Mode represents what keyboard input currently drives.
type Mode int

const (
	// ModeGrid is the default mode where keys and clicks edit cells.
	ModeGrid Mode = iota
	// ModePrompt is line editing for a path or a setting value.
	ModePrompt
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}
