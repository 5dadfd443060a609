package mount

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equaler lets props types define their own equality.
type Equaler interface {
	Equal(other any) bool
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// PropsEqual is the framework's value-equality contract for props. Types
// implementing Equaler decide for themselves; everything else is compared
// structurally, unexported fields included. Functions compare equal only
// when both are nil.
func PropsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return cmp.Equal(a, b, exportAll)
}
