package pdffer

import "fmt"

// Scope hints to the factory how template instances may be reused.
type Scope string

// Template scopes.
const (
	// ScopePrototype creates a fresh instance per Get. The default.
	ScopePrototype Scope = "prototype"
	// ScopeSingleton shares one instance across Get calls. Lifecycle methods
	// are not safe for concurrent use, so the surrounding system must
	// serialize access to a singleton instance.
	ScopeSingleton Scope = "singleton"
)

// Definition is the declared identity of a template type: the group it
// belongs to (RootGroup for none), its name, and its factory scope.
// Identity is fixed once a template type is registered.
type Definition struct {
	Group string
	Name  string
	Scope Scope
}

// Path returns the single-string encoding of the definition's group and name.
func (d Definition) Path() string {
	return EncodePath(d.Group, d.Name)
}

// State is the position of a template instance in its lifecycle.
type State uint8

// Lifecycle states, in order. There are no backward transitions except that
// setting a new payload returns the instance to StatePayloadSet.
const (
	StateCreated State = iota
	StatePayloadSet
	StateValidated
	StateGenerated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePayloadSet:
		return "payload-set"
	case StateValidated:
		return "validated"
	case StateGenerated:
		return "generated"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Instance is the untyped surface of a template instance, as handed out by a
// Factory. The expected call order is SetPayloadFromMap or SetPayloadFromText
// (or the typed SetPayload on the concrete template), then Validate, then
// Generate, then Content. Instances are not safe for concurrent use; callers
// must serialize lifecycle calls on the same instance.
type Instance interface {
	// Definition returns the declared identity of the template.
	Definition() Definition
	// SetPayloadFromMap converts a generic map into the template's payload
	// type and stores it. Returns *PayloadFormatError on conversion failure,
	// leaving any previously stored payload untouched.
	SetPayloadFromMap(m map[string]any) error
	// SetPayloadFromText converts serialized text (JSON by default) into the
	// template's payload type and stores it. Returns *PayloadFormatError on
	// parse or mapping failure, leaving any previously stored payload
	// untouched.
	SetPayloadFromText(text string) error
	// Validate reports whether the stored payload is fit for generation.
	// Returns ErrMissingPayload if no payload was ever set. A false result
	// without error is a normal outcome, not a failure.
	Validate() (bool, error)
	// Generate renders the document from the stored payload. The caller is
	// responsible for validating first. Each call fully regenerates content.
	Generate() error
	// Content returns the bytes produced by the last successful Generate,
	// or nil if none.
	Content() []byte
	// State returns the instance's current lifecycle state.
	State() State
	fmt.Stringer
}

// Renderer produces the document bytes for a payload. Implementations live
// outside the core (see renderer/fpdf for one backed by a real PDF engine).
type Renderer[T any] interface {
	Render(payload T) ([]byte, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[T any] func(payload T) ([]byte, error)

// Render implements Renderer.
func (f RendererFunc[T]) Render(payload T) ([]byte, error) { return f(payload) }

// Factory produces template instances by path (see EncodePath). The identity
// of a returned instance must decode to the same group and name as the
// requested path. The registry package provides the standard implementation.
type Factory interface {
	Get(path string) (Instance, error)
}
