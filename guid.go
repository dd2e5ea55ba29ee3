package questionbank

import "github.com/google/uuid"

// PlaceholderGUID is the identifier emitted for questions, choices and
// blanks by default. Real identifiers are assigned by the question bank
// on import, so generated records carry an all-zero placeholder.
const PlaceholderGUID = "00000000-0000-0000-0000-000000000000"

// GUIDSource produces the identifiers stamped into generated records.
type GUIDSource interface {
	NewGUID() string
}

// PlaceholderGUIDs is the default source: every call returns
// PlaceholderGUID.
var PlaceholderGUIDs GUIDSource = placeholderGUIDs{}

type placeholderGUIDs struct{}

func (placeholderGUIDs) NewGUID() string { return PlaceholderGUID }

// RandomGUIDs generates a fresh UUID per identifier, for callers that
// want usable ids without a downstream import step.
type RandomGUIDs struct{}

func (RandomGUIDs) NewGUID() string { return uuid.NewString() }
