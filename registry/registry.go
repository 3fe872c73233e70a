package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nekosoft/pdffer"
)

// Sentinel errors for registration. Callers should use errors.Is.
var (
	ErrNameRequired      = errors.New("registry: template name must not be empty")
	ErrNilConstructor    = errors.New("registry: template constructor must not be nil")
	ErrDuplicateTemplate = errors.New("registry: template path already registered")
	ErrIdentityMismatch  = errors.New("registry: constructed instance identity does not match registered path")
)

// Constructor builds a fresh template instance for a registered path.
type Constructor func() pdffer.Instance

type entry struct {
	def  pdffer.Definition
	ctor Constructor
}

// Ensures Registry implements pdffer.Factory.
var _ pdffer.Factory = (*Registry)(nil)

// Registry is an explicit path -> constructor map. Templates register a
// Definition and a Constructor (typically from an init function or during
// process startup); Get produces instances by path, honoring the registered
// scope: prototype entries construct a fresh instance per call, singleton
// entries construct once and hand out the shared instance.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]entry
	singletons map[string]pdffer.Instance
	sf         singleflight.Group
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries:    make(map[string]entry),
		singletons: make(map[string]pdffer.Instance),
	}
}

// Register adds a template under the path encoded from def's group and name.
// An empty scope defaults to pdffer.ScopePrototype. Registering the same
// path twice returns ErrDuplicateTemplate.
func (r *Registry) Register(def pdffer.Definition, ctor Constructor) error {
	if def.Name == "" {
		return ErrNameRequired
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	if def.Scope == "" {
		def.Scope = pdffer.ScopePrototype
	}
	path := def.Path()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[path]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, def.Name)
	}
	r.entries[path] = entry{def: def, ctor: ctor}
	return nil
}

// Get returns a template instance for the given path. For singleton-scoped
// templates, concurrent first calls collapse into one construction and every
// call returns the same instance; serializing lifecycle calls on it is the
// caller's responsibility.
func (r *Registry) Get(path string) (pdffer.Instance, error) {
	r.mu.RLock()
	ent, ok := r.entries[path]
	if !ok {
		r.mu.RUnlock()
		_, name := pdffer.DecodePath(path)
		return nil, fmt.Errorf("%w: %q", pdffer.ErrTemplateNotFound, name)
	}
	if ent.def.Scope != pdffer.ScopeSingleton {
		r.mu.RUnlock()
		return r.construct(ent)
	}
	inst, cached := r.singletons[path]
	r.mu.RUnlock()
	if cached {
		return inst, nil
	}
	v, err, _ := r.sf.Do(path, func() (any, error) {
		r.mu.RLock()
		inst, ok := r.singletons[path]
		r.mu.RUnlock()
		if ok {
			return inst, nil
		}
		inst, err := r.construct(ent)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.singletons[path] = inst
		r.mu.Unlock()
		return inst, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(pdffer.Instance), nil
}

// construct builds an instance and checks that its declared identity decodes
// to the registered group and name.
func (r *Registry) construct(ent entry) (pdffer.Instance, error) {
	inst := ent.ctor()
	if inst == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilConstructor, ent.def.Name)
	}
	got := inst.Definition()
	if got.Group != ent.def.Group || got.Name != ent.def.Name {
		return nil, fmt.Errorf("%w: registered %q, got %q",
			ErrIdentityMismatch, ent.def.Path(), got.Path())
	}
	return inst, nil
}

// Paths returns the registered template paths in sorted order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.entries))
	for p := range r.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset discards cached singleton instances; the next Get constructs fresh
// ones. Registrations are kept.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.singletons = make(map[string]pdffer.Instance)
}

var defaultRegistry = New()

// Default returns the process-wide registry used by the package-level
// Register and Get.
func Default() *Registry { return defaultRegistry }

// Register adds a template to the default registry.
func Register(def pdffer.Definition, ctor Constructor) error {
	return defaultRegistry.Register(def, ctor)
}

// MustRegister is Register but panics on error, for use in init functions.
func MustRegister(def pdffer.Definition, ctor Constructor) {
	if err := defaultRegistry.Register(def, ctor); err != nil {
		panic(err)
	}
}

// Get returns a template instance from the default registry.
func Get(path string) (pdffer.Instance, error) {
	return defaultRegistry.Get(path)
}
