// Package scene provides the scene graph built from a RIB stream.
//
// # Overview
//
// A scene is a tree of *Node.  Every node carries a Type discriminant, an
// ordered list of owned children and a back-reference to the node that owns
// it.  Insertion order of children is traversal order: a Translate appearing
// before a Sphere in a group applies to that sphere when the tree is walked.
//
// The tree works as a recursive tagged union.  The variant data of a node
// lives in its Payload, a closed set of types declared in this package.  The
// Type of a node is stamped from its payload when the node is created and
// cannot change afterwards.
//
// # Node Types
//
//   - GroupType: pure grouping node, no payload
//   - transforms: Translate, Rotate, Scale, ConcatTransform
//   - quadrics: Sphere, Cone, Cylinder, Hyperboloid, Paraboloid, Disk, Torus
//   - meshes: PointsGeneralPolygons, PointsPolygons (float parameters)
//   - attribute blocks: Attribute, Pattern, Bxdf, Light (float and string
//     parameters)
//
// # Creating Nodes
//
//	g := scene.NewGroup()
//	s := scene.New(&scene.Sphere{Radius: 1, ZMin: -1, ZMax: 1, ThetaMax: 360})
//	g.Append(s)
//
// Trees are normally produced by package driver, which is driven by package
// parse.
//
// # Traversal
//
// Walk visits nodes depth first in pre-order, PostOrder visits children
// before parents and All returns a pre-order iterator.  Consumers must treat
// the tree as read-only while traversing it.
//
// # Related Packages
//
//   - github.com/rib-format/go-rib/driver - construction API
//   - github.com/rib-format/go-rib/parse - RIB directives to driver calls
//   - github.com/rib-format/go-rib/encode - encode trees to text
package scene
