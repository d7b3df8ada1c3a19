package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// health and error details.
	LayoutCompactWidth = 100
)

// Timing constants.
const (
	// DefaultSearchDebounce is how long typing must pause before a search
	// request is sent.
	DefaultSearchDebounce = 350 * time.Millisecond

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
