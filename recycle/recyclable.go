package recycle

import "reflect"

// Recyclable is implemented by every pooled type.
//
// Reset must return the value to its just-constructed state. In
// particular any callbacks or references to caller owned data must be
// cleared, otherwise a later holder of the value could observe or invoke
// them.
type Recyclable interface {
	Reset()
}

// Releaser is implemented by pooled values that know the pool they came
// from and can return themselves to it.
type Releaser interface {
	Release()
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice,
// func, interface or channel.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
