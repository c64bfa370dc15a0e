package rib

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
)

var exit = os.Exit

// Build parses the RIB file at path.  When the file cannot be read the
// process exits with status 1.  A parse failure is logged and the tree
// built before the failure is returned.
func Build(path string, opts ...parse.ParseOption) *scene.Node {
	slog.Info("parsing", "path", path)
	d, err := os.ReadFile(path)
	if err != nil {
		slog.Error("cannot read input", "path", path, "error", err)
		exit(1)
		return nil
	}
	root, err := parse.Parse(d, opts...)
	if err != nil {
		slog.Warn("parse failed", "path", path, "error", err)
	}
	return root
}

// BuildChecked parses the RIB file at path.  The tree is only returned
// with Success.
func BuildChecked(path string, opts ...parse.ParseOption) (Status, *scene.Node) {
	st, root, _ := build(path, opts)
	return st, root
}

// BuildReader is BuildChecked reading from r.
func BuildReader(r io.Reader, opts ...parse.ParseOption) (Status, *scene.Node) {
	st, root, _ := buildReader(r, opts)
	return st, root
}

func build(path string, opts []parse.ParseOption) (Status, *scene.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return BadFile, nil, err
	}
	return buildBytes(d, opts)
}

func buildReader(r io.Reader, opts []parse.ParseOption) (Status, *scene.Node, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return BadFile, nil, err
	}
	return buildBytes(buf.Bytes(), opts)
}

func buildBytes(d []byte, opts []parse.ParseOption) (Status, *scene.Node, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		Free(root)
		return ParseFailed, nil, err
	}
	return Success, root, nil
}
