// Package producer offers the one-call document generation API: given a
// template factory and a path, it runs the whole lifecycle (payload
// conversion, validation, generation) and returns the document bytes.
// Use it when callers hold untyped payloads (maps, JSON text) and do not
// need fine-grained control over individual lifecycle steps.
package producer
