// Package parse recognizes RIB directives and issues the corresponding
// construction calls on a [driver.Driver] in source order.
//
// Block directives (AttributeBegin, TransformBegin, WorldBegin, FrameBegin
// and their ends) open and close groups.  Transforms, quadrics, polygon
// meshes, Attribute, Pattern, Bxdf and Light add nodes; the parameter list
// following a directive is attached to the node it created.  Any other
// directive is skipped along with its arguments unless [ParseStrict] is
// given.
package parse
