package dispatch

import (
	"fmt"

	"github.com/signadot/streamdispatch/stream"
)

// Skip describes a nested value that no callback consumed.
type Skip struct {
	// Key is the member name, for values skipped by an Object dispatcher.
	Key string
	// Index is the element position for values skipped by an Array
	// dispatcher, -1 otherwise.
	Index int
	// Kind is stream.BeginObject or stream.BeginArray.
	Kind stream.Token
	// Path is the reader's path to the value when the reader reports one.
	Path string
}

func (s Skip) String() string {
	what := "object"
	if s.Kind == stream.BeginArray {
		what = "array"
	}
	if s.Index >= 0 {
		return fmt.Sprintf("%s at [%d]", what, s.Index)
	}
	return fmt.Sprintf("%s at %q", what, s.Key)
}

// Result reports what a Deserialize call did with its container.
type Result struct {
	// Count is the number of members or elements read.
	Count int
	// Skipped lists the nested values that were skipped, in stream order.
	Skipped []Skip
}

// Complete reports whether every nested value was handled.
func (r Result) Complete() bool {
	return len(r.Skipped) == 0
}

func pathOf(r stream.Reader) string {
	if p, ok := r.(interface{ CurrentPath() string }); ok {
		return p.CurrentPath()
	}
	return ""
}
