package pdffer

// Option configures a Template (functional options pattern).
type Option[T any] func(*Template[T])

// WithRenderer sets the rendering engine invoked by Generate.
func WithRenderer[T any](r Renderer[T]) Option[T] {
	return func(t *Template[T]) {
		t.renderer = r
	}
}

// WithMapper replaces the default JSON mapper used by SetPayloadFromMap and
// SetPayloadFromText (e.g. with yamlmapper.Mapper). Set it before any
// conversion call; mappers are shared read-only across instances.
func WithMapper[T any](m PayloadMapper) Option[T] {
	return func(t *Template[T]) {
		t.mapper = m
	}
}

// WithInitPayload sets a hook run by SetPayload before the payload is stored.
// Use it to derive computed fields or configure supporting formatters; the
// returned value becomes the stored payload. The default keeps the payload
// unchanged.
func WithInitPayload[T any](fn func(T) (T, error)) Option[T] {
	return func(t *Template[T]) {
		t.initPayload = fn
	}
}

// WithValidatePayload sets the predicate Validate delegates to once a payload
// is present. The default accepts every payload.
func WithValidatePayload[T any](fn func(T) bool) Option[T] {
	return func(t *Template[T]) {
		t.validatePayload = fn
	}
}
