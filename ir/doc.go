// Package ir provides the value tree for JSON-style documents.
//
// # Overview
//
// The central type is [Object], a tagged union over the variants a
// configuration-style JSON document can hold: empty, null, string,
// integer, float, boolean, array and map. All documents, whether parsed
// from text or created programmatically, are represented as Object
// trees.
//
// The tree is a strict tree: each array element and each map value is
// exclusively owned by its container. There are no back references and
// no cycles.
//
// # Variants
//
// The Type field indicates the active variant:
//
//   - EmptyType: no value yet, distinct from null
//   - NullType: null
//   - StringType: string value
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit float
//   - BoolType: true/false
//   - ArrayType: ordered list of values
//   - MapType: string-keyed entries, unique keys, iterated in key order
//
// Exactly one variant is active. An empty Object is the zero value; it
// compares unequal to everything, including another empty Object, unless
// both are the same instance.
//
// # Creating Objects
//
// Use constructor functions:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Object{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Object{ir.FromInt(1), ir.FromInt(2)})
//
// # Paths
//
// A [Path] is an ordered list of map keys. Get dereferences a path, and
// GetOrInsert additionally creates intermediate map nodes through empty
// or missing segments. Numeric indexing into arrays is a separate,
// single-level operation ([Object.At]).
//
// # Thread Safety
//
// Object trees are not thread-safe. Concurrent mutation requires
// external synchronization; read-only concurrent access to a tree that
// is no longer mutated is safe.
//
// # Related Packages
//
//   - github.com/signadot/jsonobj/parse - parses text into Object trees
//   - github.com/signadot/jsonobj/encode - encodes Object trees to text
//   - github.com/signadot/jsonobj/config - path-based config lookups
package ir
