package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// Task is a task record as exchanged with the task API.
// JSON fields the board does not model are kept in extra and written back
// on update, so a PUT carries the record exactly as it was received.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"descricao"`
	Sector      string    `json:"setor"`
	Priority    string    `json:"prioridade"`
	UserID      int       `json:"usuario"`
	Status      Status    `json:"status"`
	CreatedAt   Timestamp `json:"data_cadastro"`

	extra map[string]json.RawMessage
}

// taskFields is used to decode the modelled fields without recursing into UnmarshalJSON
type taskFields Task

// knownTaskKeys are the JSON keys owned by the struct fields
var knownTaskKeys = []string{"id", "descricao", "setor", "prioridade", "usuario", "status", "data_cadastro"}

// UnmarshalJSON decodes the modelled fields and keeps every other key verbatim
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields taskFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range knownTaskKeys {
		delete(all, key)
	}

	*t = Task(fields)
	if len(all) > 0 {
		t.extra = all
	}
	return nil
}

// MarshalJSON writes the modelled fields plus any preserved extra keys
func (t Task) MarshalJSON() ([]byte, error) {
	fieldsJSON, err := json.Marshal(taskFields(t))
	if err != nil {
		return nil, err
	}
	if len(t.extra) == 0 {
		return fieldsJSON, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(fieldsJSON, &merged); err != nil {
		return nil, err
	}
	for key, value := range t.extra {
		if _, owned := merged[key]; !owned {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// Extra returns the value of an unmodelled JSON key
func (t *Task) Extra(key string) (json.RawMessage, bool) {
	value, ok := t.extra[key]
	return value, ok
}

// ExtraKeys returns the unmodelled JSON keys in sorted order
func (t *Task) ExtraKeys() []string {
	return slices.Sorted(maps.Keys(t.extra))
}

// WithStatus returns a shallow copy of the task with only the status replaced
func (t *Task) WithStatus(status Status) *Task {
	updated := *t
	updated.Status = status
	if t.extra != nil {
		updated.extra = maps.Clone(t.extra)
	}
	return &updated
}

// GetID returns the task ID (used by the CLI quiet output)
func (t *Task) GetID() int {
	return t.ID
}
