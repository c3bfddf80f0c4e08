/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/casetrail/dataset/errors"
)

// applyPartial returns a copy of existing with the fields named in updates
// overwritten. The merge is shallow: values are assigned as-is, field by
// field. Update keys resolve against json tags first, then exported field
// names. Keys matching neither are ignored, matching the store's
// no-validation posture. The input entity is never mutated; pointer entity
// types are cloned before merging so retained snapshots stay intact.
func applyPartial[T Entity](existing T, updates map[string]any) (T, error) {
	var zero T

	rv := reflect.ValueOf(existing)
	isPtr := rv.Kind() == reflect.Pointer
	if isPtr {
		if rv.IsNil() {
			return zero, errors.NewPartialError("", "cannot merge into a nil entity")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, errors.NewPartialError("", fmt.Sprintf("entity type %s is not a struct", rv.Type()))
	}

	clone := reflect.New(rv.Type())
	clone.Elem().Set(rv)
	sv := clone.Elem()

	index := fieldIndex(sv.Type())
	for name, val := range updates {
		i, ok := index[name]
		if !ok {
			continue
		}
		if err := setField(sv.Field(i), val); err != nil {
			return zero, errors.NewPartialError(name, err.Error())
		}
	}

	if isPtr {
		return clone.Interface().(T), nil
	}
	return sv.Interface().(T), nil
}

// fieldIndex maps merge keys to struct field positions. Exported field
// names map first; json tag names are layered on top so tags win when a
// key matches both.
func fieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		index[f.Name] = i
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			index[tag] = i
		}
	}
	return index
}

func setField(f reflect.Value, val any) error {
	if val == nil {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}

	v := reflect.ValueOf(val)
	switch {
	case v.Type().AssignableTo(f.Type()):
		f.Set(v)
	case isNumeric(v.Kind()) && isNumeric(f.Kind()) && v.CanConvert(f.Type()):
		// JSON decoding hands numbers over as float64; allow numeric widening.
		f.Set(v.Convert(f.Type()))
	default:
		return fmt.Errorf("cannot assign %s to field of type %s", v.Type(), f.Type())
	}
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
