package utils

import (
	"fmt"
	"reflect"
)

// Returns the value of an object member by name.
// If the member is a method it must take no parameters, and it gets called to return the value.
// Methods with pointer receivers are only found when object is a pointer.
func Member(name string, object any) (any, error) {
	v := reflect.ValueOf(object)

	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T is not a struct, cannot reference member '%v'", object, name)
	}

	if field := v.FieldByName(name); field.IsValid() {
		return field.Interface(), nil
	}

	method := v.MethodByName(name)
	if !method.IsValid() && v.CanAddr() {
		method = v.Addr().MethodByName(name)
	}

	if !method.IsValid() {
		return nil, fmt.Errorf("struct '%v' has no field or method named '%v'", v.Type().Name(), name)
	}

	if method.Type().NumIn() != 0 || method.Type().NumOut() == 0 {
		return nil, fmt.Errorf("method '%v.%v' must take no parameters and return a value", v.Type().Name(), name)
	}

	return method.Call(nil)[0].Interface(), nil
}

// Maps a sequence of objects into a sequence of values of a given member of each item of the input sequence
func MapMember(name string, items []any) ([]any, error) {
	result := make([]any, len(items))

	for i, object := range items {
		value, err := Member(name, object)
		if err != nil {
			return nil, fmt.Errorf("item %v: %w", i, err)
		}

		result[i] = value
	}

	return result, nil
}
