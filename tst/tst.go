// Package tst implements the ternary search tree used to index word
// glyphs for prefix lookup and, via its equal-link chain, the
// level-based traversal substring search walks (spec §4.5). Fuzzy
// search does not use the tree.
package tst

// Node is one ternary search tree node, keyed by a single rune.
type Node struct {
	Split              rune
	Low, Equal, High   *Node
	Words              []int // word indices whose glyph stream reaches here with this as the final node
	terminal           bool
}

// Tree is a ternary search tree over []rune keys, used both for word
// glyph indexing (prefix/substring search) and the direct-access
// selector index.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree { return &Tree{} }

// Root exposes the tree's root node for callers that need to drive
// the level-ladder traversal (FirstLevel/NextLevel) themselves.
func (t *Tree) Root() *Node { return t.root }

// Insert adds key, associating wordIndex with its terminal node. Equal
// keys append wordIndex to the same node's Words list rather than
// duplicating the path.
func (t *Tree) Insert(key []rune, wordIndex int) {
	if len(key) == 0 {
		return
	}
	t.root = insert(t.root, key, 0, wordIndex)
}

func insert(n *Node, key []rune, i int, wordIndex int) *Node {
	c := key[i]
	if n == nil {
		n = &Node{Split: c}
	}
	switch {
	case c < n.Split:
		n.Low = insert(n.Low, key, i, wordIndex)
	case c > n.Split:
		n.High = insert(n.High, key, i, wordIndex)
	default:
		if i+1 == len(key) {
			n.terminal = true
			n.Words = append(n.Words, wordIndex)
		} else {
			n.Equal = insert(n.Equal, key, i+1, wordIndex)
		}
	}
	return n
}

// PrefixSearch returns every word index whose key was inserted with
// prefix as a leading run of runes — the Prefix search mode of §4.5.
func (t *Tree) PrefixSearch(prefix []rune) []int {
	if len(prefix) == 0 {
		return nil
	}
	n := walkExact(t.root, prefix, 0)
	if n == nil {
		return nil
	}
	out := append([]int(nil), n.Words...)
	collect(n.Equal, &out)
	return out
}

// Lookup returns the word indices stored exactly at key (used by
// direct-access selector lookup, which requires an exact match rather
// than a prefix).
func (t *Tree) Lookup(key []rune) ([]int, bool) {
	if len(key) == 0 {
		return nil, false
	}
	n := walkExact(t.root, key, 0)
	if n == nil || !n.terminal {
		return nil, false
	}
	return n.Words, true
}

func walkExact(n *Node, key []rune, i int) *Node {
	for n != nil {
		c := key[i]
		switch {
		case c < n.Split:
			n = n.Low
		case c > n.Split:
			n = n.High
		default:
			if i+1 == len(key) {
				return n
			}
			n = n.Equal
			i++
		}
	}
	return nil
}

// collect walks n and every node reachable through Equal/Low/High,
// gathering every word index in that whole subtree; callers pass a
// hit node's Equal child so only keys continuing the hit are gathered.
func collect(n *Node, out *[]int) {
	if n == nil {
		return
	}
	*out = append(*out, n.Words...)
	collect(n.Low, out)
	collect(n.Equal, out)
	collect(n.High, out)
}

// Level is one rung of the substring ladder §4.5
// describes: the set of nodes reachable by matching one more glyph of
// the search buffer via equal-link chaining from the previous level.
type Level struct {
	Nodes []*Node
}

// FirstLevel returns the node among root and its Low/High siblings (the
// first-glyph level of the tree) whose Split rune equals r — level 0 of
// a substring search. Nodes below an Equal link are not scanned.
func FirstLevel(root *Node, r rune) Level {
	var lv Level
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Split == r {
			lv.Nodes = append(lv.Nodes, n)
		}
		walk(n.Low)
		walk(n.High)
		// Equal-children are a different glyph position, not a sibling
		// at this rune; they belong to a later level, not this scan.
	}
	walk(root)
	return lv
}

// NextLevel advances prev by one glyph r, following the Equal link of
// every node in prev and keeping those whose child's Split equals r —
// the adjacency-preserving step substring mode uses.
func NextLevel(prev Level, r rune) Level {
	var lv Level
	for _, n := range prev.Nodes {
		eq := n.Equal
		for eq != nil {
			if eq.Split == r {
				lv.Nodes = append(lv.Nodes, eq)
			}
			if r < eq.Split {
				eq = eq.Low
			} else if r > eq.Split {
				eq = eq.High
			} else {
				break
			}
		}
	}
	return lv
}

// WordsOf returns the terminal word indices attached directly to n.
func WordsOf(n *Node) []int { return n.Words }

// Collect gathers n's own Words plus every word below its Equal link,
// for callers that matched a path and now need every word whose key
// continues past that point.
func Collect(n *Node) []int {
	out := append([]int(nil), n.Words...)
	collect(n.Equal, &out)
	return out
}
