package core

import "reflect"

// isNil reports whether a value of an arbitrary generic type T is a nil
// reference. Used by AtomicNode.findOne to guard against matching a
// null element, for element types that can legitimately be nil
// (pointers, interfaces, maps, slices, channels, funcs); every other kind
// is never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
