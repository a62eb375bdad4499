package navroute

import "reflect"

// IsSerializable reports whether v is built entirely from plain data: nil,
// booleans, numbers, strings, string-keyed records and ordered sequences of
// the same. Callables, channels, struct instances and pointer graphs are not
// serializable. Used only for the factory's development-mode advisory check;
// it never blocks construction.
func IsSerializable(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if !IsSerializable(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !IsSerializable(iter.Value().Interface()) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
