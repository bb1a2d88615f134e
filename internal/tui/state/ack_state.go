package state

// AckState holds the blocking acknowledgment shown after a status change
// or a delete. While it is shown every key except the dismiss keys is ignored.
type AckState struct {
	message string
	failed  bool
	active  bool
}

// NewAckState creates an AckState with nothing to acknowledge.
func NewAckState() *AckState {
	return &AckState{}
}

// Show displays message; failed selects the error styling.
func (s *AckState) Show(message string, failed bool) {
	s.message = message
	s.failed = failed
	s.active = true
}

// Dismiss hides the acknowledgment.
func (s *AckState) Dismiss() {
	s.message = ""
	s.failed = false
	s.active = false
}

// Active reports whether an acknowledgment is waiting for the user.
func (s *AckState) Active() bool {
	return s.active
}

// Message returns the text being acknowledged.
func (s *AckState) Message() string {
	return s.message
}

// Failed reports whether the acknowledged operation failed.
func (s *AckState) Failed() bool {
	return s.failed
}

// IsDismissKey reports whether key closes the acknowledgment.
func IsDismissKey(key string) bool {
	switch key {
	case "enter", "esc", "space", " ":
		return true
	}
	return false
}
