package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachScene(cc, args, cfg.parseOpts(), func(i int, root *scene.Node) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		return dumpTree(cc.Out, root)
	})
}

// dumpTree writes one line per node in depth first order.  Meshes are
// followed by their face sizes, vertex indices and P.
func dumpTree(w io.Writer, root *scene.Node) error {
	var err error
	root.Walk(func(n *scene.Node) bool {
		if err != nil {
			return false
		}
		pad := strings.Repeat("  ", n.Depth()-root.Depth())
		if _, err = fmt.Fprintf(w, "%s%s\n", pad, n.Type()); err != nil {
			return false
		}
		m, ok := n.Payload().(scene.Mesh)
		if !ok {
			return true
		}
		_, err = fmt.Fprintf(w, "%s  faces %s\n%s  vertices %s\n%s  P %s\n",
			pad, encode.IntList(m.Faces()),
			pad, encode.IntList(m.Indices()),
			pad, encode.FloatList(scene.Points(m)))
		return err == nil
	})
	return err
}
