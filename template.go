package pdffer

import (
	"fmt"
	"reflect"
)

// Template is the generic lifecycle implementation behind every template
// type. A concrete template is a Template[T] configured with a Renderer and,
// optionally, init/validate hooks and a non-default PayloadMapper (see
// option.go). It implements Instance, adding the typed SetPayload and
// Payload methods.
//
// The lifecycle is StateCreated → StatePayloadSet → StateValidated →
// StateGenerated. Setting a new payload at any point returns the instance to
// StatePayloadSet and discards previously generated content, so stale bytes
// can never be read for a payload they were not rendered from.
//
// A Template is not safe for concurrent use; callers must serialize
// lifecycle calls, or obtain a fresh instance per request via a prototype-
// scoped factory entry.
type Template[T any] struct {
	def             Definition
	renderer        Renderer[T]
	mapper          PayloadMapper
	initPayload     func(T) (T, error)
	validatePayload func(T) bool

	payload    T
	hasPayload bool
	content    []byte
	state      State
}

// Compile-time check that Template implements Instance.
var _ Instance = (*Template[struct{}])(nil)

// New creates a template instance with the given identity. An empty scope
// defaults to ScopePrototype, and the JSON mapper is used unless WithMapper
// overrides it.
func New[T any](def Definition, opts ...Option[T]) *Template[T] {
	if def.Scope == "" {
		def.Scope = ScopePrototype
	}
	t := &Template[T]{
		def:    def,
		mapper: JSONMapper{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Definition returns the declared identity of the template.
func (t *Template[T]) Definition() Definition { return t.def }

// State returns the current lifecycle state.
func (t *Template[T]) State() State { return t.state }

// Payload returns the stored payload and whether one has been set.
func (t *Template[T]) Payload() (T, bool) { return t.payload, t.hasPayload }

// SetPayload stores the payload after passing it through the init hook, which
// may transform or enrich it. Whatever the hook returns becomes the stored
// payload. The instance moves to StatePayloadSet and any previously generated
// content is discarded.
func (t *Template[T]) SetPayload(payload T) error {
	if t.initPayload != nil {
		var err error
		payload, err = t.initPayload(payload)
		if err != nil {
			return fmt.Errorf("pdffer: init payload for %q: %w", t.def.Name, err)
		}
	}
	t.payload = payload
	t.hasPayload = true
	t.content = nil
	t.state = StatePayloadSet
	return nil
}

// SetPayloadFromMap converts a generic map into the payload type using the
// configured mapper, then stores it via SetPayload. On conversion failure it
// returns a *PayloadFormatError carrying the offending map, and the stored
// payload (if any) is left untouched.
func (t *Template[T]) SetPayloadFromMap(m map[string]any) error {
	var payload T
	if err := t.mapper.FromMap(m, &payload); err != nil {
		return &PayloadFormatError{Map: m, Err: err, fromMap: true}
	}
	return t.SetPayload(payload)
}

// SetPayloadFromText converts serialized text into the payload type using the
// configured mapper, then stores it via SetPayload. On parse or mapping
// failure it returns a *PayloadFormatError carrying the offending text, and
// the stored payload (if any) is left untouched.
func (t *Template[T]) SetPayloadFromText(text string) error {
	var payload T
	if err := t.mapper.FromText(text, &payload); err != nil {
		return &PayloadFormatError{Text: text, Err: err}
	}
	return t.SetPayload(payload)
}

// Validate reports whether the stored payload is fit for generation. It
// returns ErrMissingPayload if no payload was ever set; otherwise it
// delegates to the validate hook (default: always valid). A true result
// advances the instance to StateValidated; false is a normal outcome that
// leaves the state unchanged so the caller can fix the payload and retry.
func (t *Template[T]) Validate() (bool, error) {
	if !t.hasPayload {
		return false, ErrMissingPayload
	}
	if t.validatePayload != nil && !t.validatePayload(t.payload) {
		return false, nil
	}
	// Re-validating a generated instance must not move it backward.
	if t.state < StateValidated {
		t.state = StateValidated
	}
	return true, nil
}

// Generate renders the document from the stored payload and keeps the result
// for Content. Validating first is the caller's responsibility. Each call
// fully regenerates content; a renderer failure wraps ErrRender and leaves
// previous content in place.
func (t *Template[T]) Generate() error {
	if t.renderer == nil {
		return ErrNoRenderer
	}
	content, err := t.renderer.Render(t.payload)
	if err != nil {
		return fmt.Errorf("%w: template %q: %w", ErrRender, t.def.Name, err)
	}
	t.content = content
	t.state = StateGenerated
	return nil
}

// Content returns the bytes produced by the last successful Generate, or nil
// if the template has not generated since its payload was last set.
func (t *Template[T]) Content() []byte { return t.content }

// String returns a diagnostic representation in the form
// path{from=<payload type>,scope=<scope>}. It is never parsed back.
func (t *Template[T]) String() string {
	return fmt.Sprintf("%s{from=%s,scope=%s}", t.def.Path(), reflect.TypeOf((*T)(nil)).Elem().String(), t.def.Scope)
}
