package entropy

import (
	"fmt"

	"github.com/splitmask/splitmask/pkg/mask"
)

// TokenKind tags whether a Split's token came from a smartlist hit or a
// built-in class run.
type TokenKind int

const (
	TokenSmartlist TokenKind = iota
	TokenClassRun
)

// Token is one element of a Split: either a smartlist hit or a maximal
// (or shorter) run of one built-in class.
type Token struct {
	Kind   TokenKind
	Text   []byte
	Class  mask.BuiltinKind // valid when Kind == TokenClassRun
	Weight float64          // bits this token contributes
}

// Split is a password's decomposition into tokens, plus its equivalent
// mask string and total entropy in bits.
type Split struct {
	Tokens      []Token
	Mask        string
	EntropyBits float64
}

// maskFor renders a split's tokens into their equivalent mask string:
// one specifier per smartlist token (?w1 style, using the smartlist's
// declared index) and one specifier per byte of a class run.
func maskFor(tokens []Token, smartlistIndex int) string {
	m := ""
	for _, t := range tokens {
		switch t.Kind {
		case TokenSmartlist:
			m += fmt.Sprintf("?w%d", smartlistIndex)
		case TokenClassRun:
			for range t.Text {
				m += "?" + string(byte(t.Class))
			}
		}
	}
	return m
}
