// Package encode renders ir.Objects as JSON text.
//
// # Usage
//
//	// Compact form
//	o := ir.FromMap(map[string]*ir.Object{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	s := encode.Serialize(o)
//
//	// Human readable form
//	s := encode.Pretty(o, 4)
//
//	// Encode with options
//	err := encode.Encode(o, w, encode.Indent(2))
//
// # Related Packages
//
//   - github.com/signadot/jsonobj/ir - object representation
//   - github.com/signadot/jsonobj/parse - parse text to objects
package encode
