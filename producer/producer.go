package producer

import (
	"errors"
	"fmt"

	"github.com/nekosoft/pdffer"
)

// ErrPayloadType is returned by FromPayload when the template behind a path
// does not accept the payload's type.
var ErrPayloadType = errors.New("producer: template does not accept payload type")

// Producer drives the full template lifecycle for one document per call:
// look up by path, set the payload, validate, generate, return the bytes.
// Safe for concurrent use as long as the factory hands out prototype-scoped
// instances; a singleton-scoped template must not be generated concurrently.
type Producer struct {
	factory pdffer.Factory
}

// New creates a Producer on top of a template factory (e.g. *registry.Registry).
// Panics if factory is nil.
func New(factory pdffer.Factory) *Producer {
	if factory == nil {
		panic("producer: factory must not be nil")
	}
	return &Producer{factory: factory}
}

// FromMap generates the document for path from a generic map payload.
func (p *Producer) FromMap(path string, m map[string]any) ([]byte, error) {
	inst, err := p.factory.Get(path)
	if err != nil {
		return nil, err
	}
	if err := inst.SetPayloadFromMap(m); err != nil {
		return nil, err
	}
	return run(inst)
}

// FromText generates the document for path from a serialized textual payload
// (JSON unless the template configured another mapper).
func (p *Producer) FromText(path string, text string) ([]byte, error) {
	inst, err := p.factory.Get(path)
	if err != nil {
		return nil, err
	}
	if err := inst.SetPayloadFromText(text); err != nil {
		return nil, err
	}
	return run(inst)
}

// FromPayload generates the document for path from an already-typed payload.
// The template registered under path must accept payloads of type T.
func FromPayload[T any](factory pdffer.Factory, path string, payload T) ([]byte, error) {
	inst, err := factory.Get(path)
	if err != nil {
		return nil, err
	}
	setter, ok := inst.(interface{ SetPayload(T) error })
	if !ok {
		return nil, fmt.Errorf("%w: %s does not accept %T", ErrPayloadType, inst, payload)
	}
	if err := setter.SetPayload(payload); err != nil {
		return nil, err
	}
	return run(inst)
}

// run walks an instance with a payload already set through validation and
// generation. A validation verdict of false surfaces as ErrPayloadInvalid.
func run(inst pdffer.Instance) ([]byte, error) {
	ok, err := inst.Validate()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", pdffer.ErrPayloadInvalid, inst)
	}
	if err := inst.Generate(); err != nil {
		return nil, err
	}
	return inst.Content(), nil
}
