package jtimer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Serialize writes the timer tree rooted at root to w as a sequence of
// "depth name elapsed-seconds" triples in pre-order, one per line, per
// spec.md §4.6/§6's plain whitespace-delimited persisted format.
func Serialize(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	if err := serializeNode(bw, root, 0); err != nil {
		return err
	}
	return bw.Flush()
}

func serializeNode(w *bufio.Writer, n *Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%d %s %s\n", depth, n.Name, strconv.FormatFloat(n.Seconds(), 'g', -1, 64)); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := serializeNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads a timer tree previously written by Serialize. It returns
// an error if the stream is empty or malformed; a caller that expects
// a missing baseline file (rather than a malformed one) should check
// os.IsNotExist on the error that produced r before calling Parse.
func Parse(r io.Reader) (*Node, error) {
	scanner := bufio.NewScanner(r)

	type entry struct {
		depth int
		node  *Node
	}
	var stack []entry
	var root *Node

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("jtimer: malformed line %d: %q", lineNo, line)
		}
		depth, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("jtimer: bad depth on line %d: %w", lineNo, err)
		}
		seconds, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("jtimer: bad elapsed seconds on line %d: %w", lineNo, err)
		}

		node := New(fields[1])
		node.Elapsed = secondsToDuration(seconds)

		if depth == 0 {
			if root != nil {
				return nil, fmt.Errorf("jtimer: multiple roots at line %d", lineNo)
			}
			root = node
			stack = []entry{{depth: 0, node: node}}
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, fmt.Errorf("jtimer: line %d has no parent at depth %d", lineNo, depth-1)
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, entry{depth: depth, node: node})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("jtimer: empty timer stream")
	}
	return root, nil
}
