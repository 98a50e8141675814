package avl

import (
	"fmt"
	"io"

	"github.com/npillmayer/sortedmap/kv"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Because node identities are stable across versions, feeding two versions
// of a tree into the same writer shows their shared subtrees as shared
// graph nodes.
func Tree2Dot[K, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	emit := func(n *node[K, V]) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\nn=%d h=%d", n.key, n.size, n.height)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		for i, child := range []*node[K, V]{n.left, n.right} {
			if child == nil {
				if n.left == nil && n.right == nil {
					continue // draw leaves without empty-position stubs
				}
				nilid := 2*ID + 10000 + i
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			_ = ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(child))
		}
	}
	if t != nil {
		t.WalkNodes(func(info NodeInfo[K, V]) bool {
			emit(info.node)
			return true
		})
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,fixedsize=true,width=.1]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=circle,color=black"
	depth := n.height
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

// NodeInfo describes one tree node during a structural walk.
type NodeInfo[K, V any] struct {
	Entry  kv.Pair[K, V]
	Depth  int // root has depth 0
	Height int // subtree height, leaf has height 1
	Size   int // subtree entry count

	node *node[K, V]
}

// WalkNodes visits all nodes in reverse in-order (right subtree first),
// the order used by sideways structure dumps. The walk stops early if fn
// returns false.
func (t *Tree[K, V]) WalkNodes(fn func(info NodeInfo[K, V]) bool) {
	if t == nil || fn == nil {
		return
	}
	walkNode(t.root, 0, fn)
}

func walkNode[K, V any](n *node[K, V], depth int, fn func(info NodeInfo[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !walkNode(n.right, depth+1, fn) {
		return false
	}
	info := NodeInfo[K, V]{
		Entry:  n.pair(),
		Depth:  depth,
		Height: n.height,
		Size:   n.size,
		node:   n,
	}
	if !fn(info) {
		return false
	}
	return walkNode(n.left, depth+1, fn)
}
