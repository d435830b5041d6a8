package stream

import "fmt"

// Token is the kind of the token a Reader is positioned on.
type Token int

const (
	None Token = iota
	BeginObject
	EndObject
	BeginArray
	EndArray
	Key
	Int
	Float
	String
	Bool
	Null
)

func (t Token) String() string {
	switch t {
	case None:
		return "None"
	case BeginObject:
		return "BeginObject"
	case EndObject:
		return "EndObject"
	case BeginArray:
		return "BeginArray"
	case EndArray:
		return "EndArray"
	case Key:
		return "Key"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Null:
		return "Null"
	default:
		return "Unknown"
	}
}

// IsScalar reports whether t is a single-token value.
func (t Token) IsScalar() bool {
	switch t {
	case Int, Float, String, Bool, Null:
		return true
	default:
		return false
	}
}

// IsBegin reports whether t opens a container.
func (t Token) IsBegin() bool {
	return t == BeginObject || t == BeginArray
}

// IsEnd reports whether t closes a container.
func (t Token) IsEnd() bool {
	return t == EndObject || t == EndArray
}

func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Token) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]Token{
		"None":        None,
		"BeginObject": BeginObject,
		"EndObject":   EndObject,
		"BeginArray":  BeginArray,
		"EndArray":    EndArray,
		"Key":         Key,
		"Int":         Int,
		"Float":       Float,
		"String":      String,
		"Bool":        Bool,
		"Null":        Null,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown token %q", k)
}

// Reader is a forward-only token cursor.
type Reader interface {
	// Read advances to the next token. It returns false at the end of
	// input or when the input is malformed; Err distinguishes the two.
	Read() bool
	// Token returns the kind of the current token.
	Token() Token
	// Value returns the key for Key tokens, the unquoted text for String
	// tokens and the raw text for other scalars.
	Value() string
	Err() error
}

// Writer emits tokens.
type Writer interface {
	BeginObject() error
	EndObject() error
	BeginArray() error
	EndArray() error
	WriteKey(key string) error
	WriteInt(v int) error
	WriteFloat(v float64) error
	WriteString(v string) error
	WriteBool(v bool) error
	WriteNull() error
}
