package sortedmap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sortedmap/avl"
	"golang.org/x/term"
)

// Dump writes a human-readable structure dump of a map to w (for
// debugging purposes).
//
// Tree-backed maps are drawn sideways, root at the left, right subtrees
// above their parent. When w is a terminal, keys and structural
// annotations are colorized.
func Dump[K, V any](m Map[K, V], w io.Writer) {
	palette := makePalette(w)
	if !m.usesTree() {
		fmt.Fprintf(w, "array map, %d entries\n", m.Len())
		for _, e := range m.Entries() {
			fmt.Fprintf(w, "  %s = %v\n", palette.key.Sprintf("%v", e.Key), e.Value)
		}
		return
	}
	fmt.Fprintf(w, "tree map, %d entries, height %d\n", m.Len(), m.tree.Height())
	m.tree.WalkNodes(func(info avl.NodeInfo[K, V]) bool {
		indent := strings.Repeat("    ", info.Depth)
		fmt.Fprintf(w, "%s%s %s\n",
			indent,
			palette.key.Sprintf("%v", info.Entry.Key),
			palette.annotation.Sprintf("(n=%d h=%d)", info.Size, info.Height))
		return true
	})
}

type dumpPalette struct {
	key        *color.Color
	annotation *color.Color
}

// makePalette colorizes output only when w is a terminal.
func makePalette(w io.Writer) dumpPalette {
	p := dumpPalette{
		key:        color.New(color.FgBlue),
		annotation: color.New(color.FgHiBlack),
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		p.key.DisableColor()
		p.annotation.DisableColor()
	}
	return p
}
