// Package render draws a tree level by level for the console. It only
// reads the structure through the btree read-only accessors and never
// mutates or validates it.
package render

import (
	"fmt"
	"strings"

	"github.com/keydex/keydex/btree"
)

// Levels returns the tree's nodes grouped by depth, root first. The
// last group is always the leaf level in chain order.
func Levels(t *btree.Tree) [][]*btree.Node {
	var levels [][]*btree.Node
	current := []*btree.Node{t.Root()}

	for len(current) > 0 {
		levels = append(levels, current)
		var next []*btree.Node
		for _, n := range current {
			next = append(next, n.Children()...)
		}
		current = next
	}
	return levels
}

// Renderer formats level-order views of a tree.
type Renderer struct {
	styles *Styles
}

// New creates a renderer with the given theme name ("dark", "light").
func New(theme string) *Renderer {
	return &Renderer{styles: DefaultStylesByName(theme)}
}

// Render produces one line per tree level. Internal nodes show their
// separator keys, leaves show key:value pairs, and the leaf line joins
// nodes with the chain arrow.
func (r *Renderer) Render(t *btree.Tree) string {
	var b strings.Builder

	for depth, level := range Levels(t) {
		b.WriteString(r.styles.Depth.Render(fmt.Sprintf("L%d", depth)))
		b.WriteString(" ")

		parts := make([]string, 0, len(level))
		for _, n := range level {
			parts = append(parts, r.renderNode(n))
		}

		sep := "   "
		if level[0].Leaf() {
			sep = r.styles.Arrow.Render(" -> ")
		}
		b.WriteString(strings.Join(parts, sep))
		b.WriteString("\n")
	}
	return b.String()
}

// renderNode formats a single node: [k1 k2] for internal nodes,
// {k1:v1 k2:v2} for leaves.
func (r *Renderer) renderNode(n *btree.Node) string {
	if !n.Leaf() {
		keys := make([]string, 0, len(n.Keys()))
		for _, k := range n.Keys() {
			keys = append(keys, fmt.Sprint(k))
		}
		return r.styles.Internal.Render("[" + strings.Join(keys, " ") + "]")
	}

	pairs := make([]string, 0, len(n.Keys()))
	for i, k := range n.Keys() {
		pair := r.styles.Key.Render(fmt.Sprint(k)) +
			r.styles.Colon.Render(":") +
			r.styles.Value.Render(fmt.Sprint(n.Values()[i]))
		pairs = append(pairs, pair)
	}
	return r.styles.Leaf.Render("{") + strings.Join(pairs, " ") + r.styles.Leaf.Render("}")
}

// Summary returns a one-line description of the tree shape, used by
// the REPL after mutating commands.
func (r *Renderer) Summary(t *btree.Tree) string {
	levels := Levels(t)
	leaves := levels[len(levels)-1]
	return fmt.Sprintf("height=%d leaves=%d keys=%d", len(levels), len(leaves), t.Len())
}
