// Package value provides the format-agnostic tree that every configuration
// source is decoded into before it is merged and resolved.
//
// A Value is a tagged variant: Null, Bool, Number, String, List or Object.
// Objects keep their keys in insertion order so that a YAML or JSON document
// keeps the order its author wrote.
//
// # Merging
//
// Merge combines two trees with overlay-wins semantics:
//
//	base:    {port: 3000, db: "x"}
//	overlay: {port: 9000, db: null}
//	result:  {port: 9000, db: "x"}
//
// A Null in the overlay means "no opinion" and keeps the base value. Lists are
// replaced wholesale; list-level policy belongs to the resolver.
//
// # Paths
//
// Lookup navigates nested objects with colon-separated paths:
//
//	"server:port" -> v["server"]["port"]
package value
