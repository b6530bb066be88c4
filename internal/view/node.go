// Package view projects store state onto a declarative tree of nodes and
// maps interactions on those nodes back onto store events. Nothing here
// mutates state or knows how the tree is drawn.
package view

import "github.com/jask/softwaremanager/internal/store"

type Kind int

const (
	KindRow Kind = iota
	KindColumn
	KindText
	KindButton
	KindScroll
	KindIcon
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindScroll:
		return "scroll"
	case KindIcon:
		return "icon"
	}
	return "unknown"
}

// Style names an appearance; the renderer decides what it looks like.
type Style int

const (
	StyleNone Style = iota
	StyleSidebar
	StyleMain
	StyleLogo
	StyleNavActive
	StyleNavInactive
	StyleSection
	StyleTitle
	StyleAction
	StyleSelected
	StyleMuted
	StyleError
)

// Node is one element of a view tree. Event is the store event a press on
// the node requests; nil means the node is inert.
type Node struct {
	ID       string
	Kind     Kind
	Text     string
	Style    Style
	Event    store.Event
	Children []*Node
}

// N creates a node with the given id and kind.
func N(id string, kind Kind) *Node {
	return &Node{ID: id, Kind: kind}
}

func (n *Node) WithText(s string) *Node {
	n.Text = s
	return n
}

func (n *Node) WithStyle(s Style) *Node {
	n.Style = s
	return n
}

func (n *Node) OnPress(ev store.Event) *Node {
	n.Event = ev
	return n
}

// Child appends children, skipping nils.
func (n *Node) Child(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func Row(id string, children ...*Node) *Node {
	return N(id, KindRow).Child(children...)
}

func Column(id string, children ...*Node) *Node {
	return N(id, KindColumn).Child(children...)
}

func Scroll(id string, children ...*Node) *Node {
	return N(id, KindScroll).Child(children...)
}

func Text(id, s string) *Node {
	return N(id, KindText).WithText(s)
}

func Button(id, label string) *Node {
	return N(id, KindButton).WithText(label)
}

func Icon(id, glyph string) *Node {
	return N(id, KindIcon).WithText(glyph)
}

// Interactive reports whether pressing the node requests an event.
func (n *Node) Interactive() bool {
	return n != nil && n.Event != nil
}

// Walk visits n and its descendants depth-first in document order. It
// stops early when fn returns false.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given id.
func Find(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Focusable lists interactive nodes in document order.
func Focusable(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.Interactive() {
			out = append(out, n)
		}
		return true
	})
	return out
}
