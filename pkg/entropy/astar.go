package entropy

import (
	"container/heap"
	"math"
	"sort"

	"github.com/splitmask/splitmask/pkg/smartlist"
)

// edge is one candidate token out of a search-graph position.
type edge struct {
	to     int
	token  Token
}

// heuristicBitsPerChar is log2(10): digits are the cheapest built-in
// class, so no byte covered by a class run costs less than this.
// Smartlist hits can be cheaper per byte; DecomposeHybrid lowers the
// per-byte bound accordingly.
var heuristicBitsPerChar = math.Log2(10)

func heuristic(remaining int, bitsPerChar float64) float64 {
	return float64(remaining) * bitsPerChar
}

// best tracks the best known way to reach a position: lexicographically
// smallest (weight, tokenCount), with ties broken toward paths whose
// last edge was a smartlist hit.
type best struct {
	weight      float64
	tokenCount  int
	viaSmartlist bool
	fromPos     int
	viaEdge     edge
	set         bool
}

const weightEps = 1e-9

func (b best) betterThan(weight float64, tokenCount int, viaSmartlist bool) bool {
	if !b.set {
		return true
	}
	if weight < b.weight-weightEps {
		return true
	}
	if weight > b.weight+weightEps {
		return false
	}
	if tokenCount != b.tokenCount {
		return tokenCount < b.tokenCount
	}
	return viaSmartlist && !b.viaSmartlist
}

type pqItem struct {
	pos      int
	weight   float64
	tokens   int
	priority float64 // weight + heuristic(remaining)
	index    int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].tokens < pq[j].tokens
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// DecomposeHybrid finds the minimum-entropy split of password using
// A* over the position graph described in spec.md §4.5: edges are
// smartlist hits (found via matcher, weighted log2(matcher size)) and
// built-in class runs (every prefix length, not just the maximal one,
// since a shorter run may combine more cheaply with a following
// smartlist hit).
func DecomposeHybrid(password string, matcher *smartlist.Matcher) Split {
	pwd := []byte(password)
	n := len(pwd)
	if n == 0 {
		return Split{}
	}

	matchesByStart := make(map[int][]smartlist.Match)
	if matcher != nil {
		for _, m := range matcher.FindAll(password) {
			matchesByStart[m.Start] = append(matchesByStart[m.Start], m)
		}
	}
	smartlistWeight := 0.0
	if matcher != nil && matcher.Len() > 0 {
		smartlistWeight = math.Log2(float64(matcher.Len()))
	}

	// A smartlist hit covers its whole token for smartlistWeight bits, so
	// the per-byte bound is the cheaper of log2(10) and the cheapest hit
	// per byte; this keeps the heuristic admissible and consistent.
	bitsPerChar := heuristicBitsPerChar
	for _, ms := range matchesByStart {
		for _, m := range ms {
			if perByte := smartlistWeight / float64(m.End-m.Start); perByte < bitsPerChar {
				bitsPerChar = perByte
			}
		}
	}

	dist := make([]best, n+1)
	dist[0] = best{weight: 0, tokenCount: 0, set: true}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{pos: 0, weight: 0, tokens: 0, priority: heuristic(n, bitsPerChar)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if item.weight > dist[item.pos].weight+weightEps {
			continue // stale entry, a better path to this pos was already found
		}
		if item.pos == n {
			break
		}

		for _, e := range edgesFrom(pwd, item.pos, matchesByStart[item.pos], smartlistWeight) {
			newWeight := item.weight + e.token.Weight
			newTokens := item.tokens + 1
			viaSmartlist := e.token.Kind == TokenSmartlist
			if dist[e.to].betterThan(newWeight, newTokens, viaSmartlist) {
				dist[e.to] = best{
					weight: newWeight, tokenCount: newTokens, viaSmartlist: viaSmartlist,
					fromPos: item.pos, viaEdge: e, set: true,
				}
				heap.Push(pq, &pqItem{
					pos: e.to, weight: newWeight, tokens: newTokens,
					priority: newWeight + heuristic(n-e.to, bitsPerChar),
				})
			}
		}
	}

	tokens := reconstructPath(dist, n)
	return Split{Tokens: tokens, Mask: maskFor(tokens, 1), EntropyBits: dist[n].weight}
}

func reconstructPath(dist []best, n int) []Token {
	var rev []Token
	pos := n
	for pos != 0 {
		b := dist[pos]
		rev = append(rev, b.viaEdge.token)
		pos = b.fromPos
	}
	tokens := make([]Token, len(rev))
	for i, t := range rev {
		tokens[len(rev)-1-i] = t
	}
	return tokens
}

// edgesFrom enumerates every edge out of position i: one per smartlist
// match starting there, plus one per (class, length) pair for every
// prefix length of every matching built-in class's run starting at i.
func edgesFrom(pwd []byte, i int, hits []smartlist.Match, smartlistWeight float64) []edge {
	var edges []edge

	for _, h := range hits {
		edges = append(edges, edge{
			to: h.End,
			token: Token{Kind: TokenSmartlist, Text: append([]byte(nil), pwd[h.Start:h.End]...), Weight: smartlistWeight},
		})
	}

	for k, kind := range classKinds {
		run := classRun(pwd, i, k)
		for length := 1; length <= run; length++ {
			edges = append(edges, edge{
				to: i + length,
				token: Token{
					Kind:   TokenClassRun,
					Text:   append([]byte(nil), pwd[i:i+length]...),
					Class:  kind,
					Weight: float64(length) * math.Log2(float64(classAlphabetSize[k])),
				},
			})
		}
	}

	sort.SliceStable(edges, func(a, b int) bool { return edges[a].to < edges[b].to })
	return edges
}
