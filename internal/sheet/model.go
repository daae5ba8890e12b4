package sheet

import (
	"fmt"
)

// EpisodeField names one of the two editable sub-fields of an episode.
type EpisodeField string

const (
	EpisodeFrom EpisodeField = "from"
	EpisodeText EpisodeField = "text"
)

// ParseEpisodeField converts user input into an EpisodeField.
func ParseEpisodeField(value string) (EpisodeField, error) {
	switch EpisodeField(value) {
	case EpisodeFrom:
		return EpisodeFrom, nil
	case EpisodeText:
		return EpisodeText, nil
	default:
		return "", fmt.Errorf("episode field must be %q or %q, got %q", EpisodeFrom, EpisodeText, value)
	}
}

// OnChange receives the full record after every successful mutation.
type OnChange func(Record)

// Model holds the current worksheet record and persists it through the
// onChange hook after each mutation. Every mutator is a full-record
// replace-and-persist; writes are idempotent and the last write wins.
type Model struct {
	record   Record
	onChange OnChange
}

// NewModel wraps an initial record. onChange may be nil when persistence is
// not wanted (tests, read-only rendering).
func NewModel(record Record, onChange OnChange) *Model {
	return &Model{record: record, onChange: onChange}
}

// Record returns a copy of the current record.
func (m *Model) Record() Record {
	return m.record
}

// Validate runs the validation rules against the current record.
func (m *Model) Validate() Violation {
	return Validate(m.record)
}

// SetVision replaces the vision at index and persists the record.
func (m *Model) SetVision(index int, value string) error {
	if index < 0 || index >= VisionCount {
		return fmt.Errorf("vision index %d out of range [0,%d)", index, VisionCount)
	}
	m.record.Visions[index] = value
	m.notify()
	return nil
}

// SetEngine replaces the engine entry at index and persists the record.
func (m *Model) SetEngine(index int, value string) error {
	if index < 0 || index >= EngineCount {
		return fmt.Errorf("engine index %d out of range [0,%d)", index, EngineCount)
	}
	m.record.Engines[index] = value
	m.notify()
	return nil
}

// SetEngineSlogan replaces the slogan and persists the record.
func (m *Model) SetEngineSlogan(value string) {
	m.record.EngineSlogan = value
	m.notify()
}

// SetEpisodeField replaces the named sub-field of the episode at index and
// persists the record.
func (m *Model) SetEpisodeField(index int, field EpisodeField, value string) error {
	if index < 0 || index >= EpisodeCount {
		return fmt.Errorf("episode index %d out of range [0,%d)", index, EpisodeCount)
	}
	switch field {
	case EpisodeFrom:
		m.record.Episodes[index].From = value
	case EpisodeText:
		m.record.Episodes[index].Text = value
	default:
		return fmt.Errorf("unknown episode field %q", field)
	}
	m.notify()
	return nil
}

// Reset replaces the record with the all-empty default and persists it.
func (m *Model) Reset() {
	m.record = NewRecord()
	m.notify()
}

func (m *Model) notify() {
	if m.onChange != nil {
		m.onChange(m.record)
	}
}
