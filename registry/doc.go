// Package registry implements the pdffer.Factory contract as an explicit
// path -> constructor map built by registration calls at process startup.
// Template packages typically call MustRegister from an init function; the
// surrounding application then looks templates up by path via Get or hands
// the registry to a producer.
package registry
