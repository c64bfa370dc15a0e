package libdiff

import (
	"strings"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/scene"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs a and b line by line.
func Lines(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

type textOpts struct {
	color   bool
	context int
	encode  []encode.EncodeOption
}

type TextOption func(*textOpts)

// TextColor colors inserted lines green and deleted lines red.
func TextColor(v bool) TextOption {
	return func(o *textOpts) { o.color = v }
}

// TextContext keeps n unchanged lines around each change; a negative n
// keeps all of them.
func TextContext(n int) TextOption {
	return func(o *textOpts) { o.context = n }
}

// TextEncode sets the options used to encode both trees.
func TextEncode(opts ...encode.EncodeOption) TextOption {
	return func(o *textOpts) { o.encode = opts }
}

// Text returns the line diff of the encodings of from and to, "" when they
// encode the same.  Lines are prefixed by "+ ", "- " or "  ".
func Text(from, to *scene.Node, opts ...TextOption) string {
	o := &textOpts{context: 3}
	for _, f := range opts {
		f(o)
	}
	a := encode.MustString(from, o.encode...) + "\n"
	b := encode.MustString(to, o.encode...) + "\n"
	if a == b {
		return ""
	}
	return render(Lines(a, b), o)
}

type line struct {
	op   diffpatch.Operation
	text string
}

func render(diffs []diffpatch.Diff, o *textOpts) string {
	var ls []line
	for _, d := range diffs {
		for _, t := range strings.SplitAfter(d.Text, "\n") {
			if t == "" {
				continue
			}
			ls = append(ls, line{d.Type, strings.TrimSuffix(t, "\n")})
		}
	}
	keep := make([]bool, len(ls))
	for i, l := range ls {
		if l.op == diffpatch.DiffEqual {
			continue
		}
		keep[i] = true
		if o.context < 0 {
			continue
		}
		for j := max(0, i-o.context); j < min(len(ls), i+o.context+1); j++ {
			keep[j] = true
		}
	}
	var b strings.Builder
	skipped := false
	for i, l := range ls {
		if !keep[i] && o.context >= 0 {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString("...\n")
			skipped = false
		}
		b.WriteString(prefix(l, o.color))
		b.WriteByte('\n')
	}
	return b.String()
}

func prefix(l line, colored bool) string {
	switch l.op {
	case diffpatch.DiffInsert:
		if colored {
			return color.GreenString("+ %s", l.text)
		}
		return "+ " + l.text
	case diffpatch.DiffDelete:
		if colored {
			return color.RedString("- %s", l.text)
		}
		return "- " + l.text
	}
	return "  " + l.text
}
