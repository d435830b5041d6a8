package stream

import (
	"errors"
	"strconv"
	"strings"
)

// State provides minimal stack/state/path management.
// It just processes tokens and tracks structure; it does no I/O. Both
// the Decoder and the Encoder run every token through a State.
type State struct {
	stack []item
}

type item struct {
	kind   Token // BeginObject or BeginArray
	key    string
	hasKey bool // a key was read and its value has not ended yet
	n      int  // index of the current array element, -1 before the first
}

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
}

func (s *State) current() *item {
	n := len(s.stack)
	return &s.stack[n-1]
}

// valueStart accounts for a value beginning in the current container.
func (s *State) valueStart() error {
	if s.Depth() == 0 {
		return nil
	}
	cur := s.current()
	switch cur.kind {
	case BeginArray:
		cur.n++
	case BeginObject:
		if !cur.hasKey {
			return errors.New("value without key")
		}
	}
	return nil
}

// valueEnd accounts for a value ending in the current container.
func (s *State) valueEnd() {
	if s.Depth() == 0 {
		return
	}
	cur := s.current()
	if cur.kind == BeginObject {
		cur.hasKey = false
	}
}

// Process processes a token and updates state/path tracking. key is only
// used for Key tokens. Call this for each token in order.
func (s *State) Process(tok Token, key string) error {
	switch tok {
	case BeginObject, BeginArray:
		if err := s.valueStart(); err != nil {
			return err
		}
		s.stack = append(s.stack, item{kind: tok, n: -1})

	case EndObject, EndArray:
		if s.Depth() <= 0 {
			return errors.New("negative depth")
		}
		cur := s.current()
		if tok == EndObject && cur.kind != BeginObject {
			return errors.New("object end inside array")
		}
		if tok == EndArray && cur.kind != BeginArray {
			return errors.New("array end inside object")
		}
		if cur.hasKey {
			return errors.New("key, no val")
		}
		s.pop()
		s.valueEnd()

	case Key:
		if s.Depth() == 0 || s.current().kind != BeginObject {
			return errors.New("key not in obj")
		}
		cur := s.current()
		if cur.hasKey {
			return errors.New("key after key")
		}
		cur.key = key
		cur.hasKey = true

	case Int, Float, String, Bool, Null:
		if err := s.valueStart(); err != nil {
			return err
		}
		s.valueEnd()

	default:
		return errors.New("unknown token " + tok.String())
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// ExpectKey reports whether the next string in the input is an object key.
func (s *State) ExpectKey() bool {
	if s.Depth() == 0 {
		return false
	}
	cur := s.current()
	return cur.kind == BeginObject && !cur.hasKey
}

// CurrentPath returns the current kinded path (e.g., "", "key", "key[0]").
func (s *State) CurrentPath() string {
	var b strings.Builder
	for i := range s.stack {
		it := &s.stack[i]
		switch it.kind {
		case BeginObject:
			if it.key == "" && !it.hasKey {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(it.key)
		case BeginArray:
			if it.n < 0 {
				continue
			}
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(it.n))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// IsInObject returns true if currently inside an object.
func (s *State) IsInObject() bool {
	return s.Depth() > 0 && s.current().kind == BeginObject
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	return s.Depth() > 0 && s.current().kind == BeginArray
}

// CurrentKey returns the current object key (if in object).
func (s *State) CurrentKey() (string, bool) {
	if !s.IsInObject() {
		return "", false
	}
	cur := s.current()
	return cur.key, cur.hasKey || cur.key != ""
}

// CurrentIndex returns the current array index (if in array).
func (s *State) CurrentIndex() (int, bool) {
	if !s.IsInArray() {
		return 0, false
	}
	cur := s.current()
	if cur.n < 0 {
		return 0, false
	}
	return cur.n, true
}
