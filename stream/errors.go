package stream

import "fmt"

// Error represents a stream error.
type Error struct {
	Msg  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s at %q", e.Msg, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}
