package state

import "time"

// Status tracks one asynchronous UI region (search, saved list, detail,
// save toggle, auth). Each region owns its own error so one failure does not
// blank unrelated parts of the screen.
type Status struct {
	Loading     bool
	Err         error
	LastUpdated time.Time
}

// Begin marks the region as loading. The previous error stays visible until
// the request finishes.
func (s *Status) Begin() {
	s.Loading = true
}

// Finish records the outcome of the region's latest request.
func (s *Status) Finish(err error, now time.Time) {
	s.Loading = false
	s.Err = err
	s.LastUpdated = now
}

// Reset clears the region.
func (s *Status) Reset() {
	*s = Status{}
}
