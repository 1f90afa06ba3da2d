package tests

import (
	"fmt"
	"go/ast"
	"reflect"
	"testing"

	"gorm.io/mapping/utils"
)

// AssertObjEqual compares the named fields of r and e
func AssertObjEqual(t *testing.T, r, e interface{}, names ...string) {
	t.Helper()
	for _, name := range names {
		got := reflect.Indirect(reflect.ValueOf(r)).FieldByName(name).Interface()
		expect := reflect.Indirect(reflect.ValueOf(e)).FieldByName(name).Interface()
		t.Run(name, func(t *testing.T) {
			AssertEqual(t, got, expect)
		})
	}
}

// AssertEqual deep equality, exported fields of structs are compared one by one
// so a failure names the differing field
func AssertEqual(t *testing.T, got, expect interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, expect) {
		return
	}

	if reflect.Indirect(reflect.ValueOf(got)).IsValid() != reflect.Indirect(reflect.ValueOf(expect)).IsValid() {
		t.Errorf("%v: expect: %+v, got %+v", utils.FileWithLineNum(), expect, got)
		return
	}

	if got != nil {
		got = reflect.Indirect(reflect.ValueOf(got)).Interface()
	}

	if expect != nil {
		expect = reflect.Indirect(reflect.ValueOf(expect)).Interface()
	}

	gotValue, expectValue := reflect.ValueOf(got), reflect.ValueOf(expect)
	if gotValue.Kind() == reflect.Struct && gotValue.Type() == expectValue.Type() {
		exported := false
		for i := 0; i < gotValue.NumField(); i++ {
			if fieldStruct := gotValue.Type().Field(i); ast.IsExported(fieldStruct.Name) {
				exported = true
				field := gotValue.Field(i)
				expectField := expectValue.Field(i)
				t.Run(fieldStruct.Name, func(t *testing.T) {
					AssertEqual(t, field.Interface(), expectField.Interface())
				})
			}
		}

		if exported {
			return
		}
	}

	if gotValue.Kind() == reflect.Slice && expectValue.Kind() == reflect.Slice && gotValue.Len() == expectValue.Len() {
		for i := 0; i < gotValue.Len(); i++ {
			name := fmt.Sprintf("%v #%v", gotValue.Type().Elem().Name(), i)
			item, expectItem := gotValue.Index(i).Interface(), expectValue.Index(i).Interface()
			t.Run(name, func(t *testing.T) {
				AssertEqual(t, item, expectItem)
			})
		}
		return
	}

	if !reflect.DeepEqual(got, expect) {
		t.Errorf("%v: expect: %#v, got %#v", utils.FileWithLineNum(), expect, got)
	}
}
