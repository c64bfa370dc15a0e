// Package query selects scene nodes with expr-lang predicates.
//
// A predicate is evaluated once per node against an [Env]:
//
//	Type == "Sphere" && Fields.radius > 1
//	family(Type) == "attribute" && HasParam("diffuseGain")
//	Name == "ball" || Depth > 3
package query
