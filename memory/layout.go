package memory

import "reflect"

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() uintptr {
	return reflect.TypeFor[T]().Size()
}

// PointerFree reports whether values of type T contain no Go pointers, so
// they can live in memory outside the garbage-collected heap.
func PointerFree[T any]() bool {
	return !hasPointers(reflect.TypeFor[T]())
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, slice, string, map, chan, func, interface, unsafe.Pointer.
		return true
	}
}
