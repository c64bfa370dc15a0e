package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rib-format/go-rib"
	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"

	"github.com/scott-cotton/cli"
)

func readRIB(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getScene(cc *cli.Context, path string, opts ...parse.ParseOption) (*scene.Node, error) {
	d, err := readRIB(cc, path)
	if err != nil {
		return nil, err
	}
	root, err := parse.Parse(d, opts...)
	if err != nil {
		rib.Free(root)
		return nil, err
	}
	return root, nil
}

// eachScene calls f with the tree of each file, stdin when files is empty.
// Trees are freed after f returns.
func eachScene(cc *cli.Context, files []string, opts []parse.ParseOption, f func(i int, root *scene.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		root, err := getScene(cc, file, opts...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		err = f(i, root)
		rib.Free(root)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
