// Package yamlmapper provides a pdffer.PayloadMapper backed by gopkg.in/yaml.v3,
// for templates whose untyped payloads arrive as YAML documents rather than
// JSON. Configure it per template with pdffer.WithMapper.
package yamlmapper
