package entropy

import "math"

// DecomposeCharsetOnly ignores smartlists entirely and returns the
// split composed purely of maximal class runs, left to right: a simple
// greedy reduction, per spec.md §4.5's charset-only mode. At each
// position the run is always maximal (no shorter-prefix branching,
// since with no smartlists there is nothing shorter runs could combine
// with more cheaply).
func DecomposeCharsetOnly(password string) Split {
	pwd := []byte(password)
	var tokens []Token
	total := 0.0

	for i := 0; i < len(pwd); {
		// classKinds is ordered narrowest to widest with byte last, and
		// byte matches every byte, so this always finds a class.
		k := 0
		for !classMembership[k][pwd[i]] {
			k++
		}
		run := classRun(pwd, i, k)
		t := Token{
			Kind:   TokenClassRun,
			Text:   append([]byte(nil), pwd[i:i+run]...),
			Class:  classKinds[k],
			Weight: float64(run) * math.Log2(float64(classAlphabetSize[k])),
		}
		tokens = append(tokens, t)
		total += t.Weight
		i += run
	}

	return Split{Tokens: tokens, Mask: maskFor(tokens, 1), EntropyBits: total}
}
