package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
)

// Decoder is a Reader over JSON input.
//
// Tokens come from a segmentio json.Tokenizer; whether a string is a key
// or a value is decided by the Decoder's own State, so a Decoder also
// detects mismatched delimiters and misplaced separators that a plain
// tokenizer would accept.
type Decoder struct {
	tok   *json.Tokenizer
	state *State
	opts  *decoderOpts
	last  sepState

	cur  Token
	val  string
	err  error
	done bool
}

// NewDecoder creates a Decoder reading data.
func NewDecoder(data []byte, opts ...DecoderOption) *Decoder {
	o := &decoderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return &Decoder{
		tok:   json.NewTokenizer(data),
		state: NewState(),
		opts:  o,
	}
}

// ReadDecoder reads all of r and returns a Decoder over it.
func ReadDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewDecoder(data, opts...), nil
}

// Read advances to the next token.
func (d *Decoder) Read() bool {
	if d.done {
		return false
	}
	for d.tok.Next() {
		switch d.tok.Delim {
		case 0:
			if err := d.value(d.tok.Value); err != nil {
				return d.fail(err)
			}
		case ',':
			if d.state.Depth() == 0 || d.last != afterValue {
				return d.fail(errors.New("unexpected comma"))
			}
			d.last = afterComma
			continue
		case ':':
			if d.last != afterKey {
				return d.fail(errors.New("unexpected colon"))
			}
			d.last = afterColon
			continue
		case '{':
			d.set(BeginObject, "")
		case '}':
			d.set(EndObject, "")
		case '[':
			d.set(BeginArray, "")
		case ']':
			d.set(EndArray, "")
		default:
			return d.fail(fmt.Errorf("unexpected delimiter %q", rune(d.tok.Delim)))
		}
		if err := d.order(d.cur); err != nil {
			return d.fail(err)
		}
		if err := d.state.Process(d.cur, d.val); err != nil {
			return d.fail(err)
		}
		switch d.cur {
		case Key:
			d.last = afterKey
		case BeginObject, BeginArray:
			d.last = afterOpen
		default:
			d.last = afterValue
		}
		if d.opts.maxDepth > 0 && d.state.Depth() > d.opts.maxDepth {
			return d.fail(fmt.Errorf("nesting deeper than %d", d.opts.maxDepth))
		}
		return true
	}
	if d.tok.Err != nil {
		return d.fail(d.tok.Err)
	}
	if d.state.Depth() != 0 {
		return d.fail(io.ErrUnexpectedEOF)
	}
	d.done = true
	d.set(None, "")
	return false
}

// sepState is what the Decoder read last inside a container, a token or
// a separator.
type sepState uint8

const (
	afterOpen sepState = iota
	afterKey
	afterColon
	afterValue
	afterComma
)

// order checks that tok may follow what was read last.
func (d *Decoder) order(tok Token) error {
	if d.state.Depth() == 0 {
		return nil
	}
	switch tok {
	case EndObject, EndArray:
		switch d.last {
		case afterComma:
			return errors.New("trailing comma")
		case afterKey, afterColon:
			return errors.New("missing value")
		}
		return nil
	case Key:
		if d.last != afterOpen && d.last != afterComma {
			return errors.New("missing comma")
		}
		return nil
	}
	if d.state.IsInObject() {
		if d.last != afterColon {
			return errors.New("missing colon")
		}
		return nil
	}
	if d.last != afterOpen && d.last != afterComma {
		return errors.New("missing comma")
	}
	return nil
}

func (d *Decoder) set(tok Token, val string) {
	d.cur = tok
	d.val = val
}

func (d *Decoder) value(raw []byte) error {
	if len(raw) == 0 {
		return io.ErrUnexpectedEOF
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if d.state.ExpectKey() {
			d.set(Key, s)
		} else {
			d.set(String, s)
		}
	case 't', 'f':
		d.set(Bool, string(raw))
	case 'n':
		d.set(Null, string(raw))
	default:
		if isFloat(raw) {
			d.set(Float, string(raw))
		} else {
			d.set(Int, string(raw))
		}
	}
	if d.cur != Key && d.state.ExpectKey() {
		return fmt.Errorf("expected key, got %s", d.cur)
	}
	return nil
}

func isFloat(raw []byte) bool {
	for _, c := range raw {
		switch c {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}

func (d *Decoder) fail(err error) bool {
	d.err = &Error{Msg: err.Error(), Path: d.state.CurrentPath(), Err: err}
	d.done = true
	d.set(None, "")
	return false
}

func (d *Decoder) Token() Token {
	return d.cur
}

func (d *Decoder) Value() string {
	return d.val
}

// Err returns the error that stopped the Decoder, or nil if it stopped at
// the end of well-formed input.
func (d *Decoder) Err() error {
	return d.err
}

// Depth returns the current nesting depth (0 = top level).
func (d *Decoder) Depth() int {
	return d.state.Depth()
}

// CurrentPath returns the current kinded path (e.g., "", "key", "key[0]").
func (d *Decoder) CurrentPath() string {
	return d.state.CurrentPath()
}
