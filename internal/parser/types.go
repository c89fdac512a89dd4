package parser

import "time"

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
	// Now is the reference instant for relative dates; zero means time.Now().
	Now time.Time
	// DefaultToScheduled sends an untriggered single date without cue words to the scheduled slot
	// instead of the due slot.
	DefaultToScheduled bool
}
