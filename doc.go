// Package rib builds scene graphs from RIB files and manages their
// lifetime.
//
// [Build] and [BuildChecked] parse a file into a tree rooted at a group
// node.  [Free] tears a tree down explicitly.  A [Holder] owns the current
// tree of a long running host and replaces it on [Holder.Rebuild], freeing
// the previous tree only once the new one has been adopted.
package rib
