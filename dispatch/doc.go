// Package dispatch walks a token stream and routes the values a caller
// cares about to typed callbacks, skipping everything else.
//
// An Object dispatcher consumes the members of one object and keys its
// callbacks by member name; an Array dispatcher consumes the elements of
// one array and keys them by 0-based position. Both stop at the closing
// token of their own container, so the caller must have consumed the
// opening token already:
//
//	dec := stream.NewDecoder(data)
//	dec.Read() // {
//	res, err := dispatch.AcquireObject().Deserialize(dec, dispatch.ObjectHandlers{
//	    Int: func(name string, v int) { ... },
//	    Array: func(name string, r stream.Reader) bool {
//	        if name != "units" {
//	            return false
//	        }
//	        _, err := dispatch.AcquireArray().Deserialize(r, unitHandlers, true)
//	        return err == nil
//	    },
//	}, true)
//
// A nested object or array reaches its callback positioned on the
// opening token. A callback that returns true must have consumed the
// value up to and including its closing token; the dispatcher does not
// check. A callback that returns false, or a missing callback, makes the
// dispatcher skip the value, however deeply nested, and record it in the
// Result.
//
// Scalars whose text does not parse as the requested kind are passed as
// IntInvalid, FloatInvalid or false.
//
// Dispatchers are pooled. Deserialize with autoReturn releases the
// dispatcher when it returns; otherwise the caller calls Release.
package dispatch
