package scene

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the tree rooted at n.  Hashes are only
// comparable within one process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("scene: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.typ))
	if n.payload != nil {
		// fmt prints maps with sorted keys
		fmt.Fprintf(&h, "%+v", n.payload)
	}
	var b [8]byte
	for _, c := range n.Children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
