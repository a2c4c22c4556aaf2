package steps

import "fmt"

// Record is one displayed step.
type Record struct {
	// Number is an ordinal display label such as "01". It is never parsed.
	Number      string `json:"number" yaml:"number" toml:"number"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Side is the column a step card occupies on wide viewports.
type Side int

const (
	Left Side = iota
	Right
)

// String makes Side satisfy the fmt.Stringer interface.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other column.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// MarshalText renders the side as "left" or "right" in JSON and YAML output.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses "left" or "right".
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return fmt.Errorf("invalid side %q", text)
	}
	return nil
}

// SideFor maps a 0-based position to its side: even positions go left,
// odd positions go right.
func SideFor(index int) Side {
	if index%2 == 0 {
		return Left
	}
	return Right
}

// Sequence is an ordered, immutable list of records.
type Sequence struct {
	records []Record
}

// NewSequence builds a Sequence from a copy of records.
func NewSequence(records ...Record) Sequence {
	if len(records) == 0 {
		return Sequence{}
	}
	cp := make([]Record, len(records))
	copy(cp, records)
	return Sequence{records: cp}
}

// Len returns the number of records.
func (s Sequence) Len() int {
	return len(s.records)
}

// IsEmpty reports whether the sequence has no records.
func (s Sequence) IsEmpty() bool {
	return len(s.records) == 0
}

// At returns the record at index i. It panics when i is out of range, like a slice.
func (s Sequence) At(i int) Record {
	return s.records[i]
}

// Records returns a copy of the records in order.
func (s Sequence) Records() []Record {
	cp := make([]Record, len(s.records))
	copy(cp, s.records)
	return cp
}

// All calls yield for each record in order until yield returns false.
func (s Sequence) All(yield func(int, Record) bool) {
	for i, r := range s.records {
		if !yield(i, r) {
			return
		}
	}
}

// Header is the heading block shown above the steps.
type Header struct {
	Title    string `json:"title" yaml:"title" toml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
}

// Section bundles the header with its steps.
type Section struct {
	Header Header
	Steps  Sequence
}
