// Package count computes candidate-set sizes for masks and mask
// families as arbitrary-precision integers, matching the generator's
// enumeration exactly without running it.
package count

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"

	"github.com/splitmask/splitmask/pkg/mask"
)

// Slots returns the candidate count of a fixed slot sequence: the
// product of each slot's alphabet size. Large slot counts (long "all"
// or "byte" masks) can overflow machine words quickly, so multiplication
// runs through bigfft, which falls back to schoolbook multiplication
// below its FFT threshold and to FFT above it.
func Slots(slots []mask.Slot, reg *mask.Registry) *big.Int {
	total := big.NewInt(1)
	for _, s := range slots {
		n := big.NewInt(int64(reg.AlphabetSize(s)))
		total = bigfft.Mul(total, n)
	}
	return total
}

// Family returns the candidate count of a resolved family: Slots(fam)
// directly when word-list slots are present (their own length
// stratification already spans the family), or the sum of Slots over
// each length in [MinLen, MaxLen] for a length-bounded pure-class
// family.
func Family(fam *mask.Family, reg *mask.Registry) *big.Int {
	if fam.HasWordlist {
		return Slots(fam.Slots, reg)
	}
	sum := big.NewInt(0)
	for k := fam.MinLen; k <= fam.MaxLen; k++ {
		sum.Add(sum, Slots(fam.Slots[:k], reg))
	}
	return sum
}
