package models

// Status is the server-side status key of a task. It doubles as the key of
// the board column the task is shown in.
type Status string

const (
	StatusTodo  Status = "a_fazer"
	StatusDoing Status = "fazendo"
	StatusDone  Status = "pronto"
)

// StatusOption pairs a status key with its human-readable label
type StatusOption struct {
	Value Status
	Label string
}

// StatusOptions is the fixed option table, in column order.
// Column headers and the status picker are both built from it.
var StatusOptions = []StatusOption{
	{Value: StatusTodo, Label: "A Fazer"},
	{Value: StatusDoing, Label: "Fazendo"},
	{Value: StatusDone, Label: "Pronto"},
}

// Statuses returns the known status keys in column order
func Statuses() []Status {
	statuses := make([]Status, len(StatusOptions))
	for i, opt := range StatusOptions {
		statuses[i] = opt.Value
	}
	return statuses
}

// Valid reports whether s is one of the three known keys
func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Index returns the column position of s, or -1 for unknown keys
func (s Status) Index() int {
	for i, opt := range StatusOptions {
		if opt.Value == s {
			return i
		}
	}
	return -1
}

// Label returns the display label for s.
// Unknown keys fall back to the raw key so rendering never fails.
func (s Status) Label() string {
	if i := s.Index(); i >= 0 {
		return StatusOptions[i].Label
	}
	return string(s)
}

// ParseStatus accepts either a status key ("fazendo") or its label ("Fazendo")
func ParseStatus(value string) (Status, error) {
	for _, opt := range StatusOptions {
		if string(opt.Value) == value || opt.Label == value {
			return opt.Value, nil
		}
	}
	return "", ErrUnknownStatus
}
