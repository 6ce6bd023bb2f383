// Package wordlist loads newline-separated word-list files into the
// length-stratified, contiguous storage the generator's variable-length
// path needs: one buffer per distinct token length, groups ordered
// ascending by length, each group's tokens kept in file order.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

type group struct {
	length int
	data   []byte // length*count bytes, count tokens back to back
	count  int
}

// List is a fully loaded, length-stratified word list.
type List struct {
	groups []group
}

// Load reads path (newline-separated, UTF-8-permissive bytes, trailing
// empty line tolerated) into a List.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	defer f.Close()

	byLen := make(map[int][]byte)
	counts := make(map[int]int)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		byLen[len(line)] = append(byLen[len(line)], line...)
		counts[len(line)]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	groups := make([]group, 0, len(lengths))
	for _, l := range lengths {
		groups = append(groups, group{length: l, data: byLen[l], count: counts[l]})
	}

	return &List{groups: groups}, nil
}

// Len returns the total number of tokens across all length groups. It
// implements mask.WordlistBinding.
func (l *List) Len() int {
	total := 0
	for _, g := range l.groups {
		total += g.count
	}
	return total
}

// NumGroups returns the number of distinct token lengths present.
func (l *List) NumGroups() int {
	return len(l.groups)
}

// GroupLength returns the token byte-length of the i-th group (groups are
// ordered ascending by length).
func (l *List) GroupLength(i int) int {
	return l.groups[i].length
}

// GroupCount returns how many tokens the i-th group holds.
func (l *List) GroupCount(i int) int {
	return l.groups[i].count
}

// Token returns the j-th token (0-based, file order) of the i-th group.
// The returned slice aliases the list's internal storage and must not be
// modified.
func (l *List) Token(i, j int) []byte {
	g := l.groups[i]
	return g.data[j*g.length : (j+1)*g.length]
}
