// Package stream provides a forward-only JSON token cursor and a matching
// token emitter.
//
// The Decoder yields one token per Read: object and array delimiters,
// object keys, and scalars. Commas and colons are elided. Scalar tokens
// keep their raw text in Value, so consumers decide how to coerce them.
//
// # Example: Decoding
//
//	dec := stream.NewDecoder([]byte(`{"hp": 12}`))
//	for dec.Read() {
//	    fmt.Println(dec.Token(), dec.Value())
//	}
//	// BeginObject
//	// Key hp
//	// Int 12
//	// EndObject
//	if err := dec.Err(); err != nil {
//	    return err
//	}
//
// # Example: Encoding
//
//	enc := stream.NewEncoder(w, stream.WithIndent("", "  "))
//	enc.BeginObject()
//	enc.WriteKey("hp")
//	enc.WriteInt(12)
//	enc.EndObject()
//
// Both sides track structure with a State, so unbalanced input and
// misuse of the Encoder are reported as *Error values carrying the path
// at which they were detected.
package stream
