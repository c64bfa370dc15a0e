// Package preview samples points on the shapes of a scene tree, in world
// space, for quick look displays and bounding boxes.
//
// Quadrics are sampled on a parametric (u, v) grid; polygon meshes
// contribute their "P" vertices.  Transforms accumulate along the tree the
// way a renderer applies them: a transform affects the siblings after it
// and their descendants, and leaving a group restores the transform in
// effect when it was entered.
package preview
