package generator

import (
	"github.com/splitmask/splitmask/pkg/mask"
	"github.com/splitmask/splitmask/pkg/wordlist"
)

// RunFixed emits every candidate of a fixed-length, wordlist-free slot
// sequence: the pure jump-table fast path.
func RunFixed(slots []mask.Slot, reg *mask.Registry, sink *Sink) error {
	reels := make([]reel, len(slots))
	for i, s := range slots {
		reels[i] = newClassReelForSlot(s, reg)
	}
	return emitRecord(reels, sink)
}

// wordlistSlot pairs each word-list slot's position in the mask with its
// bound List.
type wordlistSlot struct {
	pos  int
	list *wordlist.List
}

// RunWordlist emits every candidate of a slot sequence containing at
// least one word-list slot, in length-stratified order: the outer
// odometer picks a length group per word-list slot (rightmost word-list
// slot fastest, lexicographic ascending by the length tuple), and for
// each fixed tuple emitRecord runs the inner fast path over the
// resulting fixed-width record.
func RunWordlist(slots []mask.Slot, reg *mask.Registry, lists [9]*wordlist.List, sink *Sink) error {
	var wl []wordlistSlot
	for i, s := range slots {
		if s.Kind == mask.KindWordlist {
			wl = append(wl, wordlistSlot{pos: i, list: lists[s.Index]})
		}
	}

	groupIdx := make([]int, len(wl))
	for {
		reels := make([]reel, len(slots))
		wi := 0
		for i, s := range slots {
			if s.Kind == mask.KindWordlist {
				reels[i] = newWordlistReel(wl[wi].list, groupIdx[wi])
				wi++
				continue
			}
			reels[i] = newClassReelForSlot(s, reg)
		}

		if err := emitRecord(reels, sink); err != nil {
			return err
		}

		done := true
		for p := len(wl) - 1; p >= 0; p-- {
			groupIdx[p]++
			if groupIdx[p] < wl[p].list.NumGroups() {
				done = false
				break
			}
			groupIdx[p] = 0
		}
		if done {
			return nil
		}
	}
}

// Generate runs the appropriate path for a resolved family: RunWordlist
// directly when word-list slots are present (their own length
// stratification already covers the family's length range), or RunFixed
// once per length in [MinLen, MaxLen] over the mask's prefix, ascending,
// for a length-bounded pure-class family.
func Generate(fam *mask.Family, reg *mask.Registry, lists [9]*wordlist.List, sink *Sink) error {
	if fam.HasWordlist {
		return RunWordlist(fam.Slots, reg, lists, sink)
	}
	for k := fam.MinLen; k <= fam.MaxLen; k++ {
		if err := RunFixed(fam.Slots[:k], reg, sink); err != nil {
			return err
		}
	}
	return nil
}
