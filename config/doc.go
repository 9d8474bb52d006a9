// Package config reads JSON and YAML configuration into object trees
// and exposes typed accessors over paths.
//
// Two access styles are supported. Config parses the whole document
// once and resolves paths against the tree. Structured keeps the raw
// buffer and answers individual lookups by locating byte ranges,
// which tolerates documents that the full parser rejects, such as
// files with unquoted garbage outside the looked-up values.
//
// # Related Packages
//
//   - github.com/signadot/jsonobj/ir - object representation
//   - github.com/signadot/jsonobj/parse - full document parsing
//   - github.com/signadot/jsonobj/locate - raw buffer lookups
package config
