// Package libdiff compares scene trees.
//
// [Text] produces a line diff of the text encodings of two trees.
// [MergePatch] produces an RFC 7386 JSON merge patch from one tree to
// another and [Apply] applies one; [Patch] applies an RFC 6902 JSON patch.
package libdiff
