package entropy

import "github.com/splitmask/splitmask/pkg/mask"

// classKinds are the built-in classes eligible as class-run edges,
// narrowest to widest; byte is last and always matches, the fallback
// for bytes no narrower class covers.
var classKinds = []mask.BuiltinKind{
	mask.BuiltinDigit,
	mask.BuiltinLower,
	mask.BuiltinUpper,
	mask.BuiltinSymbol,
	mask.BuiltinByte,
}

var classMembership = buildClassMembership()
var classAlphabetSize = buildClassAlphabetSize()

func buildClassMembership() [][256]bool {
	tables := make([][256]bool, len(classKinds))
	for i, k := range classKinds {
		for _, b := range mask.BuiltinAlphabet(k) {
			tables[i][b] = true
		}
	}
	return tables
}

func buildClassAlphabetSize() []int {
	sizes := make([]int, len(classKinds))
	for i, k := range classKinds {
		sizes[i] = len(mask.BuiltinAlphabet(k))
	}
	return sizes
}

// classRun returns the length of the maximal run starting at i within
// password whose bytes all belong to class kind index k.
func classRun(password []byte, i, k int) int {
	n := 0
	for i+n < len(password) && classMembership[k][password[i+n]] {
		n++
	}
	return n
}
