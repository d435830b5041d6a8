package battle

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/serial"
	"github.com/signadot/streamdispatch/stream"
)

// DocumentKey is the top-level member holding the battlefield.
const DocumentKey = "battleField"

var (
	ErrNotObject     = errors.New("document is not an object")
	ErrNoBattleField = errors.New("document has no " + DocumentKey)
)

// Write writes f as a battlefield document followed by a newline.
func Write(w io.Writer, f *BattleField, opts ...stream.EncoderOption) error {
	enc := stream.NewEncoder(w, opts...)
	if err := enc.BeginObject(); err != nil {
		return err
	}
	if err := serial.WriteObject(enc, DocumentKey, f); err != nil {
		return fmt.Errorf("writing %s: %w", DocumentKey, err)
	}
	if err := enc.EndObject(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Read reads a battlefield document using the pools of p. Members other
// than battleField are skipped.
func Read(p *Pools, r io.Reader) (*BattleField, error) {
	dec, err := stream.ReadDecoder(r)
	if err != nil {
		return nil, err
	}
	if !dec.Read() {
		if err := dec.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	if dec.Token() != stream.BeginObject {
		return nil, fmt.Errorf("%w: starts with %s", ErrNotObject, dec.Token())
	}
	var f *BattleField
	var fieldErr error
	_, err = p.Dispatch.DecodeObject(dec, dispatch.ObjectHandlers{
		Object: func(name string, r stream.Reader) bool {
			if name != DocumentKey {
				return false
			}
			if f == nil {
				f = p.Fields.Acquire()
			}
			fieldErr = f.Deserialize(r)
			return true
		},
	})
	if fieldErr != nil {
		err = fieldErr
	}
	if err != nil {
		if f != nil {
			f.Release()
		}
		return nil, fmt.Errorf("reading %s: %w", DocumentKey, err)
	}
	if f == nil {
		return nil, ErrNoBattleField
	}
	return f, nil
}
