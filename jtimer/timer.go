// Package jtimer implements the hierarchical wall-clock timer tree
// used to account "run / pre-multiplication / post-multiplication"
// phases and to compute parallel speedup/efficiency against a
// persisted serial baseline.
package jtimer

import (
	"fmt"
	"time"
)

// Node is a named hierarchical wall-clock accumulator. A node may be
// started and stopped many times; each Stop adds the elapsed delta to
// the running total. Nodes form a tree; the timer tree is written to
// only from the goroutine that owns it, between parallel regions —
// concurrent workers report their contribution through the sweep
// engine's own aggregation, not by touching a Node directly.
type Node struct {
	Name     string
	Elapsed  time.Duration
	Children []*Node

	running bool
	started time.Time
}

// New creates a root node with the given name and no children.
func New(name string) *Node {
	return &Node{Name: name}
}

// Child returns the existing child named name, creating and appending
// it if absent.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := New(name)
	n.Children = append(n.Children, c)
	return c
}

// Start records a monotonic timestamp. Calling Start on an
// already-running node panics: it indicates a bug in the caller's
// phase bracketing, not a user-triggered condition.
func (n *Node) Start() {
	if n.running {
		panic(fmt.Sprintf("jtimer: Start called twice on %q without an intervening Stop", n.Name))
	}
	n.running = true
	n.started = time.Now()
}

// Stop adds the elapsed time since the matching Start to the
// accumulator. Calling Stop without a matching Start panics.
func (n *Node) Stop() {
	if !n.running {
		panic(fmt.Sprintf("jtimer: Stop called on %q without a matching Start", n.Name))
	}
	n.Elapsed += time.Since(n.started)
	n.running = false
}

// Seconds returns the accumulated elapsed time in seconds.
func (n *Node) Seconds() float64 {
	return n.Elapsed.Seconds()
}

// Get returns the accumulated seconds of the first descendant (at any
// depth, pre-order) named name, and whether such a node was found.
func (n *Node) Get(name string) (float64, bool) {
	if n.Name == name {
		return n.Seconds(), true
	}
	for _, c := range n.Children {
		if v, ok := c.Get(name); ok {
			return v, true
		}
	}
	return 0, false
}
