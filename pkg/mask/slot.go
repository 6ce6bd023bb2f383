// Package mask implements the hybrid mask language: parsing a mask string
// into a sequence of slots, resolving those slots against a registry of
// builtin classes, custom charsets and word lists, and validating the
// resulting family of candidate lengths.
package mask

// Kind tags the shape of a Slot.
type Kind int

const (
	// KindLiteral is a single fixed byte.
	KindLiteral Kind = iota
	// KindBuiltin is one of the fixed builtin classes (digit, lower, upper, symbol, all, byte).
	KindBuiltin
	// KindCustom references a user-supplied charset by 0-based index.
	KindCustom
	// KindWordlist references a user-supplied word list by 0-based index.
	KindWordlist
)

// BuiltinKind is the specifier byte following '?' for a builtin class.
type BuiltinKind byte

const (
	BuiltinDigit  BuiltinKind = 'd'
	BuiltinLower  BuiltinKind = 'l'
	BuiltinUpper  BuiltinKind = 'u'
	BuiltinSymbol BuiltinKind = 's'
	BuiltinAll    BuiltinKind = 'a'
	BuiltinByte   BuiltinKind = 'b'
)

// IsBuiltinKind reports whether b names one of the six builtin classes.
func IsBuiltinKind(b byte) bool {
	switch BuiltinKind(b) {
	case BuiltinDigit, BuiltinLower, BuiltinUpper, BuiltinSymbol, BuiltinAll, BuiltinByte:
		return true
	default:
		return false
	}
}

// Slot is one position in a parsed mask.
type Slot struct {
	Kind    Kind
	Literal byte        // valid when Kind == KindLiteral
	Builtin BuiltinKind // valid when Kind == KindBuiltin
	Index   int         // 0-based, valid when Kind == KindCustom or KindWordlist
}
