// Package pdffer provides a contract for pluggable PDF document templates:
// units that accept a typed payload, validate it, and produce a binary
// document from it. The package defines template identity (group + name
// encoded into a single path), the lifecycle a template instance obeys from
// creation to content retrieval, and conversion of untyped structured input
// (generic maps or JSON text) into the typed payload a template expects.
// Rendering engines and template registries plug in through the Renderer
// and Factory interfaces.
package pdffer
