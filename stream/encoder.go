package stream

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Encoder writes JSON tokens to an io.Writer with explicit structure
// control. It implements Writer.
type Encoder struct {
	writer       io.Writer
	state        *State
	offset       int64
	opts         *encoderOpts
	lastWasValue bool // Track if last thing written was a value (for commas)
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	o := &encoderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return &Encoder{
		writer: w,
		state:  NewState(),
		opts:   o,
	}
}

// Reset resets the encoder to write to a new writer, keeping its options.
func (e *Encoder) Reset(w io.Writer) {
	e.writer = w
	e.state = NewState()
	e.offset = 0
	e.lastWasValue = false
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// CurrentPath returns the current kinded path (e.g., "", "key", "key[0]").
func (e *Encoder) CurrentPath() string {
	return e.state.CurrentPath()
}

// Offset returns the byte offset in the output stream.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// BeginObject begins an object.
func (e *Encoder) BeginObject() error {
	return e.begin(BeginObject, '{')
}

// EndObject ends an object.
func (e *Encoder) EndObject() error {
	return e.end(EndObject, '}')
}

// BeginArray begins an array.
func (e *Encoder) BeginArray() error {
	return e.begin(BeginArray, '[')
}

// EndArray ends an array.
func (e *Encoder) EndArray() error {
	return e.end(EndArray, ']')
}

// WriteKey writes an object key.
func (e *Encoder) WriteKey(key string) error {
	if err := e.process(Key, key); err != nil {
		return err
	}
	if e.lastWasValue {
		if err := e.writeBytes([]byte(",")); err != nil {
			return err
		}
	}
	if err := e.newline(e.state.Depth()); err != nil {
		return err
	}
	quoted, err := json.Marshal(key)
	if err != nil {
		return err
	}
	if err := e.writeBytes(quoted); err != nil {
		return err
	}
	sep := ":"
	if e.indented() {
		sep = ": "
	}
	if err := e.writeBytes([]byte(sep)); err != nil {
		return err
	}
	e.lastWasValue = false
	return nil
}

// WriteString writes a string value.
func (e *Encoder) WriteString(v string) error {
	quoted, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return e.scalar(String, quoted)
}

// WriteInt writes an integer value.
func (e *Encoder) WriteInt(v int) error {
	return e.scalar(Int, strconv.AppendInt(nil, int64(v), 10))
}

// WriteFloat writes a float value. The output always carries a decimal
// point or an exponent so that it reads back as a Float token. NaN and
// infinities have no JSON representation and are rejected.
func (e *Encoder) WriteFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &Error{Msg: "unsupported float value " + strconv.FormatFloat(v, 'g', -1, 64), Path: e.state.CurrentPath()}
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return e.scalar(Float, []byte(s))
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(v bool) error {
	return e.scalar(Bool, strconv.AppendBool(nil, v))
}

// WriteNull writes a null value.
func (e *Encoder) WriteNull() error {
	return e.scalar(Null, []byte("null"))
}

// Flush is a no-op; the Encoder does not buffer.
func (e *Encoder) Flush() error {
	return nil
}

func (e *Encoder) begin(tok Token, c byte) error {
	inArray, depth := e.state.IsInArray(), e.state.Depth()
	if err := e.process(tok, ""); err != nil {
		return err
	}
	if err := e.separate(inArray, depth); err != nil {
		return err
	}
	if err := e.writeBytes([]byte{c}); err != nil {
		return err
	}
	e.lastWasValue = false
	return nil
}

func (e *Encoder) end(tok Token, c byte) error {
	nonEmpty := e.lastWasValue
	if err := e.process(tok, ""); err != nil {
		return err
	}
	if nonEmpty {
		if err := e.newline(e.state.Depth()); err != nil {
			return err
		}
	}
	if err := e.writeBytes([]byte{c}); err != nil {
		return err
	}
	e.lastWasValue = true
	return nil
}

func (e *Encoder) scalar(tok Token, data []byte) error {
	inArray, depth := e.state.IsInArray(), e.state.Depth()
	if err := e.process(tok, ""); err != nil {
		return err
	}
	if err := e.separate(inArray, depth); err != nil {
		return err
	}
	if err := e.writeBytes(data); err != nil {
		return err
	}
	e.lastWasValue = true
	return nil
}

// separate writes what precedes an array element: a comma after the
// previous element, then the line break.
func (e *Encoder) separate(inArray bool, depth int) error {
	if !inArray {
		return nil
	}
	if e.lastWasValue {
		if err := e.writeBytes([]byte(",")); err != nil {
			return err
		}
	}
	return e.newline(depth)
}

func (e *Encoder) process(tok Token, key string) error {
	if err := e.state.Process(tok, key); err != nil {
		return &Error{Msg: err.Error(), Path: e.state.CurrentPath(), Err: err}
	}
	return nil
}

func (e *Encoder) indented() bool {
	return e.opts.prefix != "" || e.opts.indent != ""
}

func (e *Encoder) newline(depth int) error {
	if !e.indented() {
		return nil
	}
	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(e.opts.prefix)
	for range depth {
		b.WriteString(e.opts.indent)
	}
	return e.writeBytes([]byte(b.String()))
}

// writeBytes writes bytes to the writer and updates offset.
func (e *Encoder) writeBytes(data []byte) error {
	n, err := e.writer.Write(data)
	e.offset += int64(n)
	return err
}
