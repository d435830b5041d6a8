package dispatch

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

// open returns a decoder over in positioned on its first token.
func open(t *testing.T, in string) *stream.Decoder {
	t.Helper()
	dec := stream.NewDecoder([]byte(in))
	if !dec.Read() {
		t.Fatalf("empty input: %v", dec.Err())
	}
	return dec
}

// captureLog routes skip warnings into a buffer for the duration of the
// test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func expectEnd(t *testing.T, dec *stream.Decoder) {
	t.Helper()
	if dec.Read() {
		t.Errorf("expected end of input, got %s %q at %q", dec.Token(), dec.Value(), dec.CurrentPath())
	}
	if err := dec.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// tokenReader is a Reader over a fixed token list, for token sequences a
// Decoder would never produce.
type tokenReader struct {
	toks []stream.Token
	vals []string
	i    int
}

func (r *tokenReader) add(tok stream.Token, val string) *tokenReader {
	r.toks = append(r.toks, tok)
	r.vals = append(r.vals, val)
	return r
}

func (r *tokenReader) Read() bool {
	if r.i >= len(r.toks) {
		return false
	}
	r.i++
	return true
}

func (r *tokenReader) Token() stream.Token { return r.toks[r.i-1] }
func (r *tokenReader) Value() string { return r.vals[r.i-1] }
func (r *tokenReader) Err() error { return nil }

func nilFuncs(t *testing.T, v any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	for i := range rv.NumField() {
		if !rv.Field(i).IsNil() {
			t.Errorf("%s.%s survived reset", rv.Type().Name(), rv.Type().Field(i).Name)
		}
	}
}

func newTestPools() *Pools {
	return NewPools(recycle.NewRegistry())
}

func countWarnings(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "level=WARN")
}
