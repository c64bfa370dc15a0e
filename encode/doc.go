// Package encode writes scene trees as indented text, JSON, YAML or RIB.
//
// # Usage
//
//	root, _ := parse.Parse(src)
//
//	// indented text, one node per line
//	err := encode.Encode(root, os.Stdout)
//
//	// colored text
//	err = encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// RIB that parses back to the same tree
//	err = encode.Encode(root, os.Stdout, encode.EncodeFormat(format.RIBFormat))
package encode
