// Package locate finds the byte ranges of keyed and positional values
// inside raw JSON text, without building a tree.
//
// Locate scans a top-level object for a key and returns the offset and
// length of that key's value substring. All does the same for every
// element of a top-level array. Path chains Locate through nested
// objects.
//
// Ranges point into the caller's buffer; the package never retains the
// buffer. String values come back without their surrounding quotes,
// matching the substring a caller would extract by hand; use
// [Range.WidenQuotes] when the quoted form must be preserved.
//
// The scanner is deliberately permissive: it tolerates trailing commas
// and only validates as much structure as it has to traverse.
package locate
