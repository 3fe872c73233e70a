// Package structmap checks generic map data against the shape of a payload
// struct type before decoding, so that missing required fields and obvious
// type mismatches fail with a useful error instead of a silent zero value.
package structmap

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Field describes one exported struct field as seen by a structured-data
// mapper: the map key it binds to, whether the key must be present, and the
// dereferenced kind used for value compatibility checks. SelfDecoding marks
// types that do their own decoding (json.Unmarshaler, TextUnmarshaler,
// yaml.Unmarshaler); their values are left for the decoder to judge.
type Field struct {
	Key          string
	Required     bool
	Kind         reflect.Kind
	SelfDecoding bool
}

type schema struct {
	fields []Field
}

type cacheKey struct {
	typ reflect.Type
	tag string
}

var schemaCache sync.Map // cacheKey -> *schema

// Check verifies that m can populate a value of type typ when decoded with
// the given struct tag key ("json" or "yaml"). typ may be a pointer to the
// struct type. It reports the first missing required field or incompatible
// value; nil means the map passed the shape check.
func Check(typ reflect.Type, tagKey string, m map[string]any) error {
	s, err := schemaOf(typ, tagKey)
	if err != nil {
		return err
	}
	for _, f := range s.fields {
		v, ok := m[f.Key]
		if !ok || v == nil {
			if f.Required {
				return fmt.Errorf("required field %q is missing", f.Key)
			}
			continue
		}
		if f.SelfDecoding {
			continue
		}
		if err := checkValue(f, v); err != nil {
			return err
		}
	}
	return nil
}

func schemaOf(typ reflect.Type, tagKey string) (*schema, error) {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("payload type must be a struct, got %v", typ)
	}
	key := cacheKey{typ: typ, tag: tagKey}
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*schema), nil
	}
	s := &schema{}
	collectFields(typ, tagKey, s)
	schemaCache.Store(key, s)
	return s, nil
}

// collectFields walks the exported fields of typ, inlining untagged embedded
// structs the way encoding/json and yaml.v3 do.
func collectFields(typ reflect.Type, tagKey string, s *schema) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(tagKey)
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" && opts == "" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if f.Anonymous && tag == "" && ft.Kind() == reflect.Struct {
			collectFields(ft, tagKey, s)
			continue
		}
		if name == "" {
			name = defaultKey(f.Name, tagKey)
		}
		required := !strings.Contains(opts, "omitempty") &&
			f.Type.Kind() != reflect.Pointer &&
			ft.Kind() != reflect.Slice &&
			ft.Kind() != reflect.Map
		s.fields = append(s.fields, Field{
			Key:          name,
			Required:     required,
			Kind:         ft.Kind(),
			SelfDecoding: selfDecoding(ft, tagKey),
		})
	}
}

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	yamlUnmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()
)

// selfDecoding reports whether values of type ft bypass the shape check
// because the decoder hands them the raw input (e.g. time.Time accepts an
// RFC 3339 string even though its kind is struct).
func selfDecoding(ft reflect.Type, tagKey string) bool {
	pt := reflect.PointerTo(ft)
	if pt.Implements(textUnmarshalerType) {
		return true
	}
	if tagKey == "yaml" {
		return pt.Implements(yamlUnmarshalerType)
	}
	return pt.Implements(jsonUnmarshalerType)
}

// defaultKey is the map key an untagged field binds to: encoding/json uses
// the field name as-is, yaml.v3 lowercases it.
func defaultKey(fieldName, tagKey string) string {
	if tagKey == "yaml" {
		return strings.ToLower(fieldName)
	}
	return fieldName
}

func checkValue(f Field, v any) error {
	switch f.Kind {
	case reflect.String:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("field %q: cannot assign %T to string", f.Key, v)
		}
	case reflect.Bool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("field %q: cannot assign %T to bool", f.Key, v)
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := ToFloat64(v); !ok {
			return fmt.Errorf("field %q: cannot assign %T to number", f.Key, v)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, ok := ToFloat64(v)
		if !ok {
			return fmt.Errorf("field %q: cannot assign %T to integer", f.Key, v)
		}
		if !IsWholeNumber(x) {
			return fmt.Errorf("field %q: cannot assign fractional value %v to integer", f.Key, x)
		}
	case reflect.Struct:
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("field %q: cannot assign %T to struct", f.Key, v)
		}
	case reflect.Slice, reflect.Array:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fmt.Errorf("field %q: cannot assign %T to list", f.Key, v)
		}
	}
	return nil
}
