package model

import (
	"time"

	"github.com/google/uuid"
)

// LineType classifies a transcript line.
type LineType string

const (
	LineInput  LineType = "input"  // echo of a submitted numeral
	LineResult LineType = "result" // formatted conversion result
	LineError  LineType = "error"  // parse or command failure
	LineSystem LineType = "system" // base-change notices
)

// Line is a single entry in the conversion transcript.
type Line struct {
	ID        string
	Text      string
	Type      LineType
	Timestamp time.Time
}

// NewLine stamps a transcript entry with a short unique ID.
func NewLine(t LineType, text string) Line {
	return Line{
		ID:        uuid.New().String()[:8],
		Text:      text,
		Type:      t,
		Timestamp: time.Now(),
	}
}
