package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rib-format/go-rib/scene"
)

// Logf writes a formatted trace line to stderr.  Scene nodes are rendered
// as their path and maps/slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, map[string][]float64, map[string][]string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *scene.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = x.Path()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
