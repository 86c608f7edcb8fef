// Package absent decides whether a key or value counts as missing.
package absent

import "reflect"

// Is reports whether v is a nil interface or a nil pointer, map, slice,
// func, channel or interface value.
func Is[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
