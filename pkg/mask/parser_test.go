package mask

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		mask  string
		want  []Slot
	}{
		{
			name: "digits",
			mask: "?d?d",
			want: []Slot{
				{Kind: KindBuiltin, Builtin: BuiltinDigit},
				{Kind: KindBuiltin, Builtin: BuiltinDigit},
			},
		},
		{
			name: "all builtins",
			mask: "?l?u?a?b?s",
			want: []Slot{
				{Kind: KindBuiltin, Builtin: BuiltinLower},
				{Kind: KindBuiltin, Builtin: BuiltinUpper},
				{Kind: KindBuiltin, Builtin: BuiltinAll},
				{Kind: KindBuiltin, Builtin: BuiltinByte},
				{Kind: KindBuiltin, Builtin: BuiltinSymbol},
			},
		},
		{
			name: "literal question mark",
			mask: "a??b",
			want: []Slot{
				{Kind: KindLiteral, Literal: 'a'},
				{Kind: KindLiteral, Literal: '?'},
				{Kind: KindLiteral, Literal: 'b'},
			},
		},
		{
			name: "mixed literals, custom, wordlist",
			mask: "a ?ld?1?w2",
			want: []Slot{
				{Kind: KindLiteral, Literal: 'a'},
				{Kind: KindLiteral, Literal: ' '},
				{Kind: KindBuiltin, Builtin: BuiltinLower},
				{Kind: KindLiteral, Literal: 'd'},
				{Kind: KindCustom, Index: 0},
				{Kind: KindWordlist, Index: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.mask)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.mask, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %d slots, want %d", tt.mask, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q) slot %d = %+v, want %+v", tt.mask, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	badMasks := []string{
		"?",
		"?x",
		"?w",
		"?w0",
		"?wa",
	}
	for _, m := range badMasks {
		if _, err := Parse(m); err == nil {
			t.Errorf("Parse(%q) = nil error, want SyntaxError", m)
		}
	}
}

func TestParseEmptyMask(t *testing.T) {
	slots, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("Parse(\"\") = %d slots, want 0", len(slots))
	}
}
