package jtimer

import "time"

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// Comparison is the result of zipping a named node from a parallel run
// against its counterpart in a persisted serial baseline.
type Comparison struct {
	Name       string
	Speedup    float64
	Efficiency float64
	Matched    bool
}

// Zip walks both trees by name and computes, per matching named node,
// speedup = serial.elapsed / parallel.elapsed and efficiency = speedup
// / workers. Names present in parallel but missing from serial yield a
// Comparison with Matched = false rather than an error, per spec.md
// §4.6's "diagnostic but not fatal" contract.
func Zip(serial, parallel *Node, workers int) []Comparison {
	var out []Comparison
	var walk func(n *Node)
	walk = func(n *Node) {
		c := Comparison{Name: n.Name}
		if serialSeconds, ok := serial.Get(n.Name); ok {
			parallelSeconds := n.Seconds()
			c.Matched = true
			if parallelSeconds > 0 {
				c.Speedup = serialSeconds / parallelSeconds
			}
			if workers > 0 {
				c.Efficiency = c.Speedup / float64(workers)
			}
		}
		out = append(out, c)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(parallel)
	return out
}
