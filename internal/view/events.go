package view

import (
	"strconv"
	"strings"

	"github.com/jask/softwaremanager/internal/store"
)

type InteractionKind int

const (
	// Press activates a node, like a click or enter on a focused button.
	Press InteractionKind = iota
	// Remove asks to delete what the node shows. Only project rows accept it.
	Remove
)

// Interaction is a host-toolkit action aimed at one node of the tree.
type Interaction struct {
	Kind   InteractionKind
	NodeID string
}

// EventFor maps an interaction onto the store event it requests. It is
// total: unknown nodes and inert targets yield (nil, false).
func EventFor(tree *Node, in Interaction) (store.Event, bool) {
	n := Find(tree, in.NodeID)
	if n == nil {
		return nil, false
	}
	switch in.Kind {
	case Press:
		if !n.Interactive() {
			return nil, false
		}
		return n.Event, true
	case Remove:
		i, ok := ProjectRowIndex(n.ID)
		if !ok {
			return nil, false
		}
		return store.DeleteProject{Index: i}, true
	}
	return nil, false
}

// ProjectRowIndex parses the index out of a Collections row id.
func ProjectRowIndex(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "project/")
	if !ok || strings.Contains(rest, "/") {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
