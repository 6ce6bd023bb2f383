package mask

// WordlistBinding is the minimal view pkg/mask needs of a loaded word
// list: how many distinct tokens it holds. The concrete storage
// (length-stratified buffers, iteration order) lives in pkg/wordlist,
// which implements this interface without importing pkg/mask.
type WordlistBinding interface {
	Len() int
}

// Registry binds the 1-indexed custom charsets (?1-?9) and word lists
// (?w1-?w9) a mask may reference. It is built once per run, before
// parsing, per the mask language's "alphabet registry resolved before
// parsing" contract.
type Registry struct {
	custom    [9][]byte
	wordlists [9]WordlistBinding
}

// NewRegistry returns an empty registry with no bound charsets or word lists.
func NewRegistry() *Registry {
	return &Registry{}
}

// BindCustom registers the 1-indexed custom charset (?1 is index 1).
// Duplicate bytes are preserved as provided and inflate AlphabetSize
// (and so pkg/count's reported cardinality) accordingly; the generator
// emits each occurrence, so a repeated byte produces a repeated line.
func (r *Registry) BindCustom(index int, charset []byte) {
	r.custom[index-1] = charset
}

// BindWordlist registers the 1-indexed word list (?w1 is index 1).
func (r *Registry) BindWordlist(index int, w WordlistBinding) {
	r.wordlists[index-1] = w
}

// AlphabetSize returns the candidate-set size a slot contributes. For a
// word list slot this is the total token count across all length groups;
// counting does not need to know about length stratification, only
// cardinality.
func (r *Registry) AlphabetSize(s Slot) int {
	switch s.Kind {
	case KindLiteral:
		return 1
	case KindBuiltin:
		return len(BuiltinAlphabet(s.Builtin))
	case KindCustom:
		return len(r.custom[s.Index])
	case KindWordlist:
		if r.wordlists[s.Index] == nil {
			return 0
		}
		return r.wordlists[s.Index].Len()
	default:
		return 0
	}
}

// CustomCharset returns the bytes bound to the 1-indexed custom charset,
// or nil if unbound.
func (r *Registry) CustomCharset(index int) []byte {
	return r.custom[index-1]
}

// Family is a mask plus its resolved, validated slot-count length bounds.
type Family struct {
	Slots      []Slot
	MinLen     int
	MaxLen     int
	HasWordlist bool
}

// Resolve validates slots against the registry (every referenced custom
// charset and word list present and non-empty) and folds in an optional
// minlen/maxlen, returning the resulting Family. A minlen/maxlen request
// combined with any word list slot is rejected with BoundsOutOfRangeError
// (Open Question policy (a): reject rather than apply bounds to slot
// count alone when word lists are present).
func (r *Registry) Resolve(slots []Slot, minlen, maxlen *int) (*Family, error) {
	hasWordlist := false
	for _, s := range slots {
		switch s.Kind {
		case KindCustom:
			if r.custom[s.Index] == nil {
				return nil, &UnboundSlotError{Kind: KindCustom, Index: s.Index + 1}
			}
			if len(r.custom[s.Index]) == 0 {
				return nil, &EmptyAlphabetError{Kind: KindCustom, Index: s.Index + 1}
			}
		case KindWordlist:
			hasWordlist = true
			if r.wordlists[s.Index] == nil {
				return nil, &UnboundSlotError{Kind: KindWordlist, Index: s.Index + 1}
			}
			if r.wordlists[s.Index].Len() == 0 {
				return nil, &EmptyAlphabetError{Kind: KindWordlist, Index: s.Index + 1}
			}
		}
	}

	n := len(slots)
	min, max := n, n

	if minlen != nil || maxlen != nil {
		if hasWordlist {
			return nil, &BoundsOutOfRangeError{Msg: "minlen/maxlen cannot be combined with word list slots"}
		}
		if minlen != nil {
			min = *minlen
		}
		if maxlen != nil {
			max = *maxlen
		}
	}

	if min < 0 {
		return nil, &BoundsOutOfRangeError{Msg: "minlen must not be negative"}
	}
	if min > max {
		return nil, &BoundsOutOfRangeError{Msg: "minlen is greater than maxlen"}
	}
	if max > n {
		return nil, &BoundsOutOfRangeError{Msg: "maxlen exceeds mask length"}
	}

	return &Family{Slots: slots, MinLen: min, MaxLen: max, HasWordlist: hasWordlist}, nil
}
