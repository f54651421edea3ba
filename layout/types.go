package layout

import (
	"fmt"

	"github.com/google/uuid"

	"finchart/errors"
)

// PanelRole tells the composer how a panel participates in a layout.
type PanelRole string

const (
	// RoleOverlay panels are layered onto a host panel's axes.
	RoleOverlay PanelRole = "overlay"
	// RolePanel panels occupy a standalone slot of their own.
	RolePanel PanelRole = "panel"
)

// panelNamespace seeds the name-based panel identifiers. Fixed so that the
// same panel kind and title always produce the same ID.
var panelNamespace = uuid.MustParse("8a9c1db0-52f3-45c1-9d6c-2f6fb1a6e7c4")

// Panel is one analytic visual unit prior to rendering: an opaque content
// payload tagged with a kind for the renderer and a role for the composer.
type Panel struct {
	ID       uuid.UUID
	Kind     string
	Title    string
	Role     PanelRole
	Content  any
	Overlays []Panel
}

// NewPanel creates a panel with a deterministic identifier derived from its
// kind and title.
func NewPanel(kind, title string, role PanelRole, content any) Panel {
	return Panel{
		ID:      uuid.NewSHA1(panelNamespace, []byte(kind+"/"+title)),
		Kind:    kind,
		Title:   title,
		Role:    role,
		Content: content,
	}
}

// Axis is the stacking direction of a split node.
type Axis string

const (
	Vertical   Axis = "vertical"
	Horizontal Axis = "horizontal"
)

// Node is one slot of a composition tree: a leaf holding a panel, or a
// split holding ordered children with relative-size weights.
type Node struct {
	Panel    *Panel
	Axis     Axis
	Children []*Node
	Weights  []float64
}

// Leaf wraps a panel into a leaf node.
func Leaf(p Panel) *Node {
	return &Node{Panel: &p}
}

// Split stacks children along an axis with the given relative weights.
// Weights must be positive and match the child count.
func Split(axis Axis, weights []float64, children ...*Node) (*Node, error) {
	if axis != Vertical && axis != Horizontal {
		return nil, errors.NewUnsupportedOption("axis", string(axis))
	}
	if len(children) == 0 {
		return nil, errors.NewInvalidInput("split with no children")
	}
	if len(weights) != len(children) {
		return nil, errors.NewInvalidInput(
			fmt.Sprintf("%d weights for %d children", len(weights), len(children)))
	}
	for i, w := range weights {
		if w <= 0 {
			return nil, errors.NewInvalidInput(fmt.Sprintf("non-positive weight %g at slot %d", w, i))
		}
	}
	return &Node{Axis: axis, Children: children, Weights: weights}, nil
}

// IsLeaf reports whether the node holds a single panel.
func (n *Node) IsLeaf() bool {
	return n.Panel != nil
}

// Leaves returns the panels of the tree in depth-first order.
func (n *Node) Leaves() []*Panel {
	var out []*Panel
	n.Walk(func(node *Node) bool {
		if node.IsLeaf() {
			out = append(out, node.Panel)
		}
		return true
	})
	return out
}

// Walk visits the tree depth-first, children in order. Returning false from
// fn stops the descent below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Validate checks the tree invariants recursively: leaves carry no
// children, splits carry matched positive weights.
func (n *Node) Validate() error {
	if n.IsLeaf() {
		if len(n.Children) > 0 {
			return errors.NewInvalidInput("leaf node with children")
		}
		return nil
	}
	if len(n.Children) == 0 {
		return errors.NewInvalidInput("split node with no children")
	}
	if len(n.Weights) != len(n.Children) {
		return errors.NewInvalidInput(
			fmt.Sprintf("%d weights for %d children", len(n.Weights), len(n.Children)))
	}
	for _, w := range n.Weights {
		if w <= 0 {
			return errors.NewInvalidInput(fmt.Sprintf("non-positive weight %g", w))
		}
	}
	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}
