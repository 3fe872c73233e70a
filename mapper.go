package pdffer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/nekosoft/pdffer/internal/structmap"
)

// PayloadMapper converts untyped structured input into a typed payload value.
// FromMap takes an in-memory generic map; FromText takes a serialized textual
// form. out is a pointer to the payload value to populate. Implementations
// must be stateless with respect to a single conversion call so a mapper can
// be shared read-only across template instances.
type PayloadMapper interface {
	FromMap(m map[string]any, out any) error
	FromText(text string, out any) error
}

// JSONMapper is the default PayloadMapper. It checks the map against the
// payload struct's shape (required fields, value compatibility) and then
// decodes via a JSON round-trip. Unknown keys are rejected. Text input must
// be a JSON object.
type JSONMapper struct{}

// Compile-time check that JSONMapper implements PayloadMapper.
var _ PayloadMapper = JSONMapper{}

// FromMap converts a generic map into the payload value pointed to by out.
func (JSONMapper) FromMap(m map[string]any, out any) error {
	if m == nil {
		return errors.New("payload map is nil")
	}
	if err := structmap.Check(reflect.TypeOf(out), "json", m); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal payload map: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// FromText parses JSON text into a generic map and converts it like FromMap,
// so missing required fields fail the same way on both entry points.
func (j JSONMapper) FromText(text string, out any) error {
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return fmt.Errorf("parse payload text: %w", err)
	}
	return j.FromMap(m, out)
}
