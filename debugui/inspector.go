package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
)

// FieldValue is one formatted field of an inspected value. Struct fields
// carry their own fields in Children and leave Value empty.
type FieldValue struct {
	Name     string
	Value    string
	Children []FieldValue
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Fields formats the exported fields of a struct value, descending into
// nested structs that do not implement fmt.Stringer.
func Fields(v any) []FieldValue {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return structFields(val)
}

func structFields(val reflect.Value) []FieldValue {
	t := val.Type()
	out := make([]FieldValue, 0, t.NumField())

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fieldVal := val.Field(i)
		if sf.Type.Kind() == reflect.Ptr {
			if fieldVal.IsNil() {
				out = append(out, FieldValue{Name: sf.Name, Value: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		out = append(out, formatField(sf.Name, fieldVal))
	}
	return out
}

func formatField(name string, val reflect.Value) FieldValue {
	if val.Type().Implements(stringerType) {
		return FieldValue{Name: name, Value: fmt.Sprint(val.Interface())}
	}

	switch val.Kind() {
	case reflect.Struct:
		return FieldValue{Name: name, Children: structFields(val)}
	case reflect.Slice:
		return FieldValue{Name: name, Value: fmt.Sprintf("[%d items]", val.Len())}
	case reflect.Map:
		return FieldValue{Name: name, Value: fmt.Sprintf("map[%d items]", val.Len())}
	case reflect.Float32, reflect.Float64:
		return FieldValue{Name: name, Value: fmt.Sprintf("%.3f", val.Float())}
	case reflect.Func:
		return FieldValue{Name: name, Value: "func"}
	default:
		return FieldValue{Name: name, Value: fmt.Sprint(val.Interface())}
	}
}

// Inspect renders v as a collapsible read-only field tree.
func Inspect(label string, v any) {
	if imgui.TreeNodeStr(label) {
		renderFields(Fields(v))
		imgui.TreePop()
	}
}

func renderFields(fields []FieldValue) {
	for _, f := range fields {
		if f.Children != nil {
			if imgui.TreeNodeStr(f.Name) {
				renderFields(f.Children)
				imgui.TreePop()
			}
			continue
		}
		imgui.Text(fmt.Sprintf("%s: %s", f.Name, f.Value))
	}
}
