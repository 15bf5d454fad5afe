package todo

import "fmt"

// Kind classifies store failures.
type Kind int

const (
	// KindConfig means the user data directory could not be determined.
	KindConfig Kind = iota + 1
	// KindCreate means the data directory or empty data file could not be created.
	KindCreate
	// KindRead means an existing data file could not be read or parsed.
	KindRead
	// KindSerialize means the task list could not be serialized or written.
	KindSerialize
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCreate:
		return "create"
	case KindRead:
		return "read"
	case KindSerialize:
		return "serialize"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a store failure with its kind and the data file path involved.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConfig:
		return "cannot determine user data directory"
	case KindCreate:
		return fmt.Sprintf("cannot create data file %s: %v", e.Path, e.Err)
	case KindRead:
		return fmt.Sprintf("cannot read data file %s: %v", e.Path, e.Err)
	case KindSerialize:
		return fmt.Sprintf("cannot serialize tasks to %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
