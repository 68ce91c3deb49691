package domain

import "time"

// Backend selects which text-generation service runs the interpretation.
type Backend string

const (
	BackendCloud Backend = "cloud"
	BackendLocal Backend = "local"
)

// InterpretationRequest carries one lyric text to one backend. No mutation
// after construction.
type InterpretationRequest struct {
	Lyrics   string
	Source   LyricSourceTag
	Query    string // original user input, kept for history
	Artist   string
	Title    string
	UseLocal bool // user forced the local backend
}

// InterpretationResult is the generated prose plus which backend produced it.
type InterpretationResult struct {
	Text    string
	Backend Backend
	Model   string
}

// InterpretationRecord is a completed interpretation as stored in history.
type InterpretationRecord struct {
	ID             string
	Query          string
	Artist         string
	Title          string
	Source         LyricSourceTag
	Lyrics         string
	Interpretation string
	Backend        Backend
	CreatedAt      time.Time
}
