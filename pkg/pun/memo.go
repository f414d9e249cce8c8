package pun

import (
	"fmt"
	"math"
	"strings"

	"github.com/temporal-IPA/autopun/pkg/phoneme"
	"github.com/temporal-IPA/autopun/pkg/phono"
)

// transition consumes target[from:to] with word.
type transition struct {
	from, to int
	word     string
}

type nodeState uint8

const (
	unresolved nodeState = iota
	solved
)

// node is the memo entry of one offset. A dead offset has no node.
type node struct {
	state    nodeState
	expanded bool // successors pushed on the work stack
	edges    []transition

	// Set once solved.
	total  int // number of coverings from this offset, saturated
	choice int // index in edges
}

// memo is the per-call segmentation state. It is never shared.
type memo struct {
	n     int // target length
	nodes map[int]*node
}

// buildMemo records every occurrence of every eligible entry in target,
// grouped by start offset. Entries are squashed before matching, so
// dictionaries built with exact pronunciations still line up.
func buildMemo(target phoneme.Stream, ix *phono.Index, excluded map[string]struct{}) *memo {
	m := &memo{n: len(target), nodes: make(map[int]*node)}
	t := string(target)
	ix.Each(func(e phono.Entry) bool {
		if len(e.Phones) == 0 {
			return true
		}
		if _, skip := excluded[phono.NormalizeString(e.Word)]; skip {
			return true
		}
		p := string(phoneme.Squash(e.Phones))
		for start := 0; start+len(p) <= len(t); {
			i := strings.Index(t[start:], p)
			if i < 0 {
				break
			}
			from := start + i
			m.add(transition{from: from, to: from + len(p), word: e.Word})
			start = from + 1
		}
		return true
	})
	return m
}

func (m *memo) add(tr transition) {
	nd, ok := m.nodes[tr.from]
	if !ok {
		nd = &node{}
		m.nodes[tr.from] = nd
	}
	nd.edges = append(nd.edges, tr)
}

// resolve solves offset 0, and every offset it depends on, using an
// explicit work stack. Each offset is resolved at most once: its draw
// is kept even when several predecessors reach it. It reports whether
// offset 0 has a covering.
func (m *memo) resolve(rng Source) bool {
	if m.n == 0 {
		return false
	}
	if _, ok := m.nodes[0]; !ok {
		return false
	}

	stack := []int{0}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		nd, ok := m.nodes[p]
		if !ok || nd.state == solved {
			stack = stack[:len(stack)-1]
			continue
		}
		if !nd.expanded {
			nd.expanded = true
			for _, tr := range nd.edges {
				if tr.to <= tr.from {
					panic(fmt.Sprintf("pun: transition %q does not advance (%d -> %d)", tr.word, tr.from, tr.to))
				}
				if tr.to == m.n {
					continue
				}
				if next, ok := m.nodes[tr.to]; ok && next.state == unresolved && !next.expanded {
					stack = append(stack, tr.to)
				}
			}
			continue
		}
		stack = stack[:len(stack)-1]
		m.settle(p, nd, rng)
	}

	_, ok := m.nodes[0]
	return ok
}

// settle picks one viable transition of nd, weighted by the number of
// coverings each one leads to. Successors are already settled. An
// offset without viable transitions is dead and leaves the memo.
func (m *memo) settle(p int, nd *node, rng Source) {
	weights := make([]int, len(nd.edges))
	total := 0
	for i, tr := range nd.edges {
		w := m.weight(tr.to)
		weights[i] = w
		total = addSat(total, w)
	}
	if total == 0 {
		delete(m.nodes, p)
		return
	}

	draw := rng.IntN(total)
	cum := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		cum = addSat(cum, w)
		if draw < cum {
			nd.choice = i
			break
		}
	}
	nd.total = total
	nd.state = solved
}

// weight returns the number of coverings from offset q: 1 at the end
// of the target, 0 for a dead offset.
func (m *memo) weight(q int) int {
	if q == m.n {
		return 1
	}
	nd, ok := m.nodes[q]
	if !ok || nd.state != solved {
		return 0
	}
	return nd.total
}

// text follows the chosen transitions from offset 0.
func (m *memo) text() string {
	var words []string
	for p := 0; p != m.n; {
		nd := m.nodes[p]
		tr := nd.edges[nd.choice]
		words = append(words, tr.word)
		p = tr.to
	}
	return strings.Join(words, " ")
}

// addSat adds two non-negative ints, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
