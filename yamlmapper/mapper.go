package yamlmapper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/nekosoft/pdffer"
	"github.com/nekosoft/pdffer/internal/structmap"
)

// Mapper converts YAML input into typed payloads. It applies the same shape
// check as the default JSON mapper, then decodes strictly: unknown keys are
// rejected. Payload structs are addressed by their yaml tags (untagged fields
// bind to the lowercased field name, per yaml.v3).
type Mapper struct{}

// Compile-time check that Mapper implements pdffer.PayloadMapper.
var _ pdffer.PayloadMapper = Mapper{}

// FromMap converts a generic map into the payload value pointed to by out
// via a YAML round-trip.
func (Mapper) FromMap(m map[string]any, out any) error {
	if m == nil {
		return errors.New("payload map is nil")
	}
	if err := structmap.Check(reflect.TypeOf(out), "yaml", m); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal payload map: %w", err)
	}
	return decodeStrict(data, out)
}

// FromText parses a YAML document into a generic map and converts it like
// FromMap, so missing required fields fail the same way on both entry points.
func (mp Mapper) FromText(text string, out any) error {
	var m map[string]any
	if err := yaml.Unmarshal([]byte(text), &m); err != nil {
		return fmt.Errorf("parse payload text: %w", err)
	}
	if m == nil {
		return errors.New("payload text is not a YAML mapping")
	}
	return mp.FromMap(m, out)
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
