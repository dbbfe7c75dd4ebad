package dataview

import "fmt"

// State is the fetch-lifecycle state of a view.
type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

var stateNames = [...]string{"idle", "loading", "success", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Settled reports whether s is terminal for the current load.
func (s State) Settled() bool { return s == Success || s == Failed }

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown view state %q", b)
}

// Class is what a renderer has to draw for a state.
type Class int

const (
	// ClassLoading draws the progress indicator.
	ClassLoading Class = iota
	// ClassNoData draws the static empty message. Failed loads and
	// successful empty loads share it.
	ClassNoData
	// ClassTable draws the records and their summary statistics.
	ClassTable
)

func (c Class) String() string {
	switch c {
	case ClassLoading:
		return "loading"
	case ClassNoData:
		return "no-data"
	default:
		return "table"
	}
}

// ClassOf maps a state and a record count to a render class.
func ClassOf(s State, records int) Class {
	switch s {
	case Success:
		if records == 0 {
			return ClassNoData
		}
		return ClassTable
	case Failed:
		return ClassNoData
	default:
		return ClassLoading
	}
}
