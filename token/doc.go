// Package token splits RIB text into tokens.
//
// [Tokenize] produces identifiers, numbers, quoted strings, array brackets
// and comments, each carrying a [Pos] that resolves to a line and column on
// demand.
package token
