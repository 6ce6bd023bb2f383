package generator

import (
	"sort"

	"github.com/splitmask/splitmask/pkg/mask"
	"github.com/splitmask/splitmask/pkg/wordlist"
)

// reel is one position in an emitted record: either a single-byte class
// slot (jump-table driven) or a word-list slot at a fixed chosen token
// length (index driven, tokens memcpy'd). A class slot whose alphabet
// repeats a byte is index driven too, with one-byte tokens. Both are
// advanced by the same carry-on-wrap odometer in emitRecord.
type reel struct {
	width int // bytes this position contributes to a record

	isClass    bool
	classNext  [256]byte // valid when isClass: 256-entry successor table
	classFirst byte

	tokens [][]byte // valid when !isClass: this length group's tokens in file order, or a repeating alphabet's bytes
}

// first returns the reel's starting state (the value at odometer zero).
func (r *reel) first() int {
	if r.isClass {
		return int(r.classFirst)
	}
	return 0
}

// write copies the reel's value at state into dst (len(dst) == r.width).
func (r *reel) write(state int, dst []byte) {
	if r.isClass {
		dst[0] = byte(state)
		return
	}
	copy(dst, r.tokens[state])
}

// advance computes the reel's next state after state, reporting whether
// the reel wrapped (exhausted its alphabet and carried).
func (r *reel) advance(state int) (next int, wrapped bool) {
	if r.isClass {
		prev := byte(state)
		nxt := r.classNext[prev]
		return int(nxt), prev >= nxt
	}
	nxt := state + 1
	if nxt == len(r.tokens) {
		return 0, true
	}
	return nxt, false
}

// newClassReel builds a jump-table reel from a slot's alphabet. The
// alphabet is sorted ascending internally: the jump table's carry
// detection (a non-increasing transition signals wrap) is only correct
// over a monotonically increasing walk, per the mask language's
// jump-table contract. Duplicate bytes are preserved, so a byte that
// appears twice in the alphabet is visited twice.
func newClassReel(alphabet []byte) reel {
	sorted := append([]byte(nil), alphabet...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// A byte-keyed jump table cannot step from a byte to a repeat of
	// itself, so an alphabet with a repeated byte is walked by index
	// instead, one single-byte token per occurrence.
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			tokens := make([][]byte, len(sorted))
			for j := range sorted {
				tokens[j] = sorted[j : j+1]
			}
			return reel{width: 1, tokens: tokens}
		}
	}

	var r reel
	r.isClass = true
	r.width = 1
	n := len(sorted)
	for i, c := range sorted {
		r.classNext[c] = sorted[(i+1)%n]
	}
	r.classFirst = sorted[0]
	return r
}

// newClassReelForSlot resolves a literal/builtin/custom slot's alphabet
// through reg and builds its reel.
func newClassReelForSlot(s mask.Slot, reg *mask.Registry) reel {
	var alphabet []byte
	switch s.Kind {
	case mask.KindLiteral:
		alphabet = []byte{s.Literal}
	case mask.KindBuiltin:
		alphabet = mask.BuiltinAlphabet(s.Builtin)
	case mask.KindCustom:
		alphabet = reg.CustomCharset(s.Index + 1)
	}
	return newClassReel(alphabet)
}

// newWordlistReel builds a reel over the tokens of one length group of a
// word list.
func newWordlistReel(l *wordlist.List, group int) reel {
	n := l.GroupLength(group)
	count := l.GroupCount(group)
	tokens := make([][]byte, count)
	for i := 0; i < count; i++ {
		tokens[i] = l.Token(group, i)
	}
	return reel{width: n, tokens: tokens}
}
