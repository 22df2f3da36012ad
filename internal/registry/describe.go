package registry

import (
	"reflect"
	"slices"
)

// Describer lets a tracked type attach metadata to its methods without
// runtime attribute scanning. DescribeMethods is called on the zero value.
type Describer interface {
	DescribeMethods() []MethodSpec
}

var excludedMethods = map[string]bool{
	"DescribeMethods": true,
}

// Descriptor is everything a registry needs to seed itself.
type Descriptor struct {
	ClassName string
	Methods   []MethodSpec
}

// ClassName returns the package-qualified name of t, dereferencing pointers.
func ClassName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Describe builds a Descriptor from the exported method set of *T (or of T
// itself for interface types), merged with any Describer metadata.
func Describe(t reflect.Type) Descriptor {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	methodSet := t
	if t.Kind() != reflect.Interface {
		methodSet = reflect.PointerTo(t)
	}

	specs := make(map[string]MethodSpec, methodSet.NumMethod())
	names := make([]string, 0, methodSet.NumMethod())
	for i := range methodSet.NumMethod() {
		m := methodSet.Method(i)
		if excludedMethods[m.Name] {
			continue
		}
		specs[m.Name] = MethodSpec{Name: m.Name}
		names = append(names, m.Name)
	}

	for _, spec := range describedSpecs(t) {
		if excludedMethods[spec.Name] || spec.Name == "" {
			continue
		}
		if _, ok := specs[spec.Name]; !ok {
			names = append(names, spec.Name)
		}
		specs[spec.Name] = spec
	}

	slices.Sort(names)
	d := Descriptor{ClassName: ClassName(t), Methods: make([]MethodSpec, 0, len(names))}
	for _, name := range names {
		d.Methods = append(d.Methods, specs[name])
	}
	return d
}

func describedSpecs(t reflect.Type) []MethodSpec {
	if t.Kind() == reflect.Interface {
		return nil
	}
	if d, ok := reflect.New(t).Interface().(Describer); ok {
		return d.DescribeMethods()
	}
	return nil
}
