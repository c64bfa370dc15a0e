package rib

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
	"github.com/stretchr/testify/require"
)

const ball = `WorldBegin
AttributeBegin
  Attribute "identifier" "string name" ["ball"]
  Translate 1 2 3
  Sphere 5 -5 5 360
AttributeEnd
WorldEnd
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestBuildChecked(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "ball.rib", ball)

	st, root := BuildChecked(p)
	require.Equal(t, Success, st)
	require.NotNil(t, root)
	require.Equal(t, 6, root.Count())

	st, root = BuildChecked(filepath.Join(dir, "missing.rib"))
	require.Equal(t, BadFile, st)
	require.Nil(t, root)

	bad := writeFile(t, dir, "bad.rib", "WorldBegin\nSphere 1 2\n")
	st, root = BuildChecked(bad)
	require.Equal(t, ParseFailed, st)
	require.Nil(t, root)

	st, root = BuildChecked(writeFile(t, dir, "strict.rib", "Option \"x\" 1\n"), parse.ParseStrict(true))
	require.Equal(t, ParseFailed, st)
	require.Nil(t, root)
}

func TestBuildReader(t *testing.T) {
	st, root := BuildReader(strings.NewReader(ball))
	require.Equal(t, Success, st)
	require.Equal(t, scene.GroupType, root.Type())
	require.Len(t, root.Children, 1)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	root := Build(filepath.Join(dir, "missing.rib"))
	require.Equal(t, 1, code)
	require.Nil(t, root)

	code = -1
	p := writeFile(t, dir, "partial.rib", "WorldBegin\nDisk 0 1 360\nCone 1\n")
	root = Build(p)
	require.Equal(t, -1, code)
	require.NotNil(t, root)
	// partial tree up to the failing directive
	require.Equal(t, 3, root.Count())
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "Bad file", BadFile.String())
	require.Equal(t, "Parse failed", ParseFailed.String())
	require.Equal(t, "Success", Success.String())
}

func TestFree(t *testing.T) {
	_, root := BuildReader(strings.NewReader(ball))
	var nodes []*scene.Node
	for n := range root.All() {
		nodes = append(nodes, n)
	}
	require.Equal(t, len(nodes), Free(root))
	for _, n := range nodes {
		require.True(t, n.Freed(), n.Type().String())
		require.Nil(t, n.Parent)
		require.Empty(t, n.Children)
	}
	attr := nodes[3].Payload().(*scene.Attribute)
	require.Zero(t, attr.Params.Len())

	require.Zero(t, Free(root))
	require.Zero(t, Free(nil))
}

func TestFreeSubtree(t *testing.T) {
	_, root := BuildReader(strings.NewReader(ball))
	world := root.Children[0]
	require.Equal(t, 5, Free(world))
	require.Empty(t, root.Children)
	require.False(t, root.Freed())
}

func TestHolderRebuild(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scene.rib", ball)
	h := NewHolder()
	require.Nil(t, h.Root())

	st, err := h.Rebuild(p)
	require.NoError(t, err)
	require.Equal(t, Success, st)
	first := h.Root()
	require.NotNil(t, first)
	require.Equal(t, uint64(1), h.Generation())

	// same content: replaced and freed, generation unchanged
	_, err = h.Rebuild(p)
	require.NoError(t, err)
	second := h.Root()
	require.NotSame(t, first, second)
	require.True(t, first.Freed())
	require.False(t, second.Freed())
	require.Equal(t, uint64(1), h.Generation())

	// failing rebuild keeps the current tree
	writeFile(t, dir, "scene.rib", "WorldBegin\nSphere [1\n")
	st, err = h.Rebuild(p)
	require.Error(t, err)
	require.Equal(t, ParseFailed, st)
	require.Same(t, second, h.Root())
	require.False(t, second.Freed())
	require.Equal(t, 6, second.Count())

	st, err = h.Rebuild(filepath.Join(dir, "gone.rib"))
	require.Error(t, err)
	require.Equal(t, BadFile, st)
	require.Same(t, second, h.Root())

	writeFile(t, dir, "scene.rib", "Disk 0 1 360\n")
	_, err = h.Rebuild(p)
	require.NoError(t, err)
	require.Equal(t, uint64(2), h.Generation())
	require.True(t, second.Freed())

	last := h.Root()
	h.Close()
	require.Nil(t, h.Root())
	require.True(t, last.Freed())
}

func TestHolderReplace(t *testing.T) {
	h := NewHolder()
	a := scene.NewGroup()
	h.Replace(a)
	require.Same(t, a, h.Root())
	h.Replace(a)
	require.False(t, a.Freed())
	require.Equal(t, uint64(1), h.Generation())

	b := scene.NewGroup()
	b.Append(scene.New(&scene.Sphere{Radius: 1}))
	h.Replace(b)
	require.True(t, a.Freed())
	require.Equal(t, uint64(2), h.Generation())
}

func TestHolderReplaceSubtree(t *testing.T) {
	root, err := parse.Parse([]byte(ball))
	require.NoError(t, err)
	h := NewHolder()
	h.Replace(root)

	world := root.Children[0]
	h.Replace(world)
	require.True(t, root.Freed())
	require.Same(t, world, h.Root())
	require.False(t, world.Freed())
	require.Nil(t, world.Parent)
	require.Len(t, world.Children, 1)
	require.Equal(t, 5, world.Count())

	h.Close()
	require.True(t, world.Freed())
}

func TestHolderConcurrentRoot(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scene.rib", ball)
	h := NewHolder()
	_, err := h.Rebuild(p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				if h.Root() == nil {
					t.Error("nil root during rebuilds")
					return
				}
			}
		}
	}()
	for range 20 {
		_, err := h.Rebuild(p)
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()
}
