package dom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

var kinds = struct {
	sync.Mutex
	classes map[reflect.Type]string
}{classes: make(map[reflect.Type]string)}

// KindClass returns the class name for type T. All values of the same type
// share the class, which makes it usable as a per-component default class.
//
// Kind classes start with "t" and never clash with the "s"-classes generated
// for styles. They depend on the import path and name of T only, i.e. they
// are stable across program runs.
func KindClass[T any]() string {
	return kindClass(reflect.TypeFor[T]())
}

// KindClassOf returns the class name for the dynamic type of v, see KindClass.
// It returns "" for v == nil.
func KindClassOf(v any) string {
	if v == nil {
		return ""
	}
	return kindClass(reflect.TypeOf(v))
}

func kindClass(t reflect.Type) string {
	kinds.Lock()
	defer kinds.Unlock()
	if class, ok := kinds.classes[t]; ok {
		return class
	}
	class := "t" + strconv.FormatUint(xxhash.Sum64String("kind\x00"+typeName(t)), 36)
	kinds.classes[t] = class
	tracer().Debugf("dom: kind class %s = %s", typeName(t), class)
	return class
}

// typeName is the fully qualified name of t. Unnamed types are spelled out
// as literals with every named type in them qualified by its import path, so
// struct{ x int } declared in two packages yields two different names.
func typeName(t reflect.Type) string {
	var b strings.Builder
	writeTypeName(&b, t)
	return b.String()
}

func writeTypeName(b *strings.Builder, t reflect.Type) {
	if t.Name() != "" {
		if t.PkgPath() != "" {
			b.WriteString(t.PkgPath())
			b.WriteByte('.')
		}
		b.WriteString(t.Name())
		return
	}
	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeTypeName(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeTypeName(b, t.Elem())
	case reflect.Array:
		fmt.Fprintf(b, "[%d]", t.Len())
		writeTypeName(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeTypeName(b, t.Key())
		b.WriteByte(']')
		writeTypeName(b, t.Elem())
	case reflect.Chan:
		b.WriteString(t.ChanDir().String())
		b.WriteByte(' ')
		writeTypeName(b, t.Elem())
	case reflect.Struct:
		b.WriteString("struct{")
		for i := range t.NumField() {
			f := t.Field(i)
			if i > 0 {
				b.WriteString("; ")
			}
			if f.Anonymous {
				b.WriteString("embedded ")
			}
			writeMemberName(b, f.PkgPath, f.Name)
			b.WriteByte(' ')
			writeTypeName(b, f.Type)
			if f.Tag != "" {
				b.WriteString(" " + strconv.Quote(string(f.Tag)))
			}
		}
		b.WriteByte('}')
	case reflect.Func:
		writeSignature(b, t)
	case reflect.Interface:
		b.WriteString("interface{")
		for i := range t.NumMethod() {
			m := t.Method(i)
			if i > 0 {
				b.WriteString("; ")
			}
			writeMemberName(b, m.PkgPath, m.Name)
			writeSignature(b, m.Type)
		}
		b.WriteByte('}')
	default:
		b.WriteString(t.String())
	}
}

// writeMemberName writes the name of a struct field or interface method.
// Unexported names are qualified by the package they belong to.
func writeMemberName(b *strings.Builder, pkgPath, name string) {
	if pkgPath != "" {
		b.WriteString(pkgPath)
		b.WriteByte('.')
	}
	b.WriteString(name)
}

func writeSignature(b *strings.Builder, t reflect.Type) {
	b.WriteString("func(")
	for i := range t.NumIn() {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			b.WriteString("...")
			writeTypeName(b, t.In(i).Elem())
			continue
		}
		writeTypeName(b, t.In(i))
	}
	b.WriteString(")(")
	for i := range t.NumOut() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTypeName(b, t.Out(i))
	}
	b.WriteByte(')')
}
