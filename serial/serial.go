// Package serial provides the named-member write helpers used by types
// that serialize themselves to a stream.Writer.
package serial

import (
	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

// Serializer writes the members of an object, or a whole value when it
// is a list element.
type Serializer interface {
	Serialize(w stream.Writer) error
}

// Deserializer reads a value whose opening token has already been read.
type Deserializer interface {
	Deserialize(r stream.Reader) error
}

func WriteInt(w stream.Writer, name string, v int) error {
	if err := w.WriteKey(name); err != nil {
		return err
	}
	return w.WriteInt(v)
}

func WriteFloat(w stream.Writer, name string, v float64) error {
	if err := w.WriteKey(name); err != nil {
		return err
	}
	return w.WriteFloat(v)
}

func WriteString(w stream.Writer, name string, v string) error {
	if err := w.WriteKey(name); err != nil {
		return err
	}
	return w.WriteString(v)
}

func WriteBool(w stream.Writer, name string, v bool) error {
	if err := w.WriteKey(name); err != nil {
		return err
	}
	return w.WriteBool(v)
}

// WriteObject writes name followed by an object holding the members s
// serializes. A nil s, including a typed nil, writes nothing.
func WriteObject(w stream.Writer, name string, s Serializer) error {
	if recycle.IsNil(s) {
		return nil
	}
	if err := w.WriteKey(name); err != nil {
		return err
	}
	if err := w.BeginObject(); err != nil {
		return err
	}
	if err := s.Serialize(w); err != nil {
		return err
	}
	return w.EndObject()
}

// WriteList writes name followed by an array of items. Each item writes
// its whole value, so items that are objects emit their own braces. A
// nil slice writes nothing; an empty one writes [].
func WriteList[T Serializer](w stream.Writer, name string, items []T) error {
	if items == nil {
		return nil
	}
	if err := w.WriteKey(name); err != nil {
		return err
	}
	if err := w.BeginArray(); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Serialize(w); err != nil {
			return err
		}
	}
	return w.EndArray()
}
