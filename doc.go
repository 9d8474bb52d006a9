// Package jsonobj provides document level operations over object
// trees: diffing two trees and applying RFC 6902 patches.
//
// The subpackages hold the building blocks: ir for the object
// representation, parse and encode for text, locate for raw buffer
// lookups, and config for configuration access.
package jsonobj
