package mask

import "testing"

type fakeWordlist struct{ n int }

func (f fakeWordlist) Len() int { return f.n }

func TestRegistryResolve_Unbound(t *testing.T) {
	r := NewRegistry()
	slots, _ := Parse("?1")
	if _, err := r.Resolve(slots, nil, nil); err == nil {
		t.Fatal("expected UnboundSlotError for unbound custom charset")
	}

	slots, _ = Parse("?w1")
	if _, err := r.Resolve(slots, nil, nil); err == nil {
		t.Fatal("expected UnboundSlotError for unbound word list")
	}
}

func TestRegistryResolve_EmptyAlphabet(t *testing.T) {
	r := NewRegistry()
	r.BindCustom(1, []byte{})
	slots, _ := Parse("?1")
	if _, err := r.Resolve(slots, nil, nil); err == nil {
		t.Fatal("expected EmptyAlphabetError for empty custom charset")
	}
}

func TestRegistryResolve_LengthBounds(t *testing.T) {
	r := NewRegistry()
	slots, _ := Parse("?u?l?l?l")

	minlen, maxlen := 1, 4
	fam, err := r.Resolve(slots, &minlen, &maxlen)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if fam.MinLen != 1 || fam.MaxLen != 4 {
		t.Errorf("got MinLen=%d MaxLen=%d, want 1,4", fam.MinLen, fam.MaxLen)
	}

	bad := 5
	if _, err := r.Resolve(slots, nil, &bad); err == nil {
		t.Fatal("expected BoundsOutOfRangeError for maxlen > mask length")
	}

	hi, lo := 3, 1
	if _, err := r.Resolve(slots, &hi, &lo); err == nil {
		t.Fatal("expected BoundsOutOfRangeError for minlen > maxlen")
	}
}

func TestRegistryResolve_WordlistRejectsLengthBounds(t *testing.T) {
	r := NewRegistry()
	r.BindWordlist(1, fakeWordlist{n: 3})
	r.BindCustom(1, []byte("12"))
	slots, _ := Parse("?w1?1?d?d?d")

	minlen := 1
	if _, err := r.Resolve(slots, &minlen, nil); err == nil {
		t.Fatal("expected BoundsOutOfRangeError when combining minlen with word list slots")
	}

	fam, err := r.Resolve(slots, nil, nil)
	if err != nil {
		t.Fatalf("Resolve without bounds returned error: %v", err)
	}
	if fam.MinLen != len(slots) || fam.MaxLen != len(slots) {
		t.Errorf("expected fixed-length family, got MinLen=%d MaxLen=%d", fam.MinLen, fam.MaxLen)
	}
}

func TestAlphabetSize(t *testing.T) {
	r := NewRegistry()
	r.BindCustom(1, []byte("0123456789abcdef"))
	r.BindWordlist(1, fakeWordlist{n: 2})

	cases := []struct {
		slot Slot
		want int
	}{
		{Slot{Kind: KindLiteral, Literal: 'a'}, 1},
		{Slot{Kind: KindBuiltin, Builtin: BuiltinDigit}, 10},
		{Slot{Kind: KindBuiltin, Builtin: BuiltinAll}, 10 + 26 + 26 + 33},
		{Slot{Kind: KindBuiltin, Builtin: BuiltinByte}, 256},
		{Slot{Kind: KindCustom, Index: 0}, 16},
		{Slot{Kind: KindWordlist, Index: 0}, 2},
	}
	for _, c := range cases {
		if got := r.AlphabetSize(c.slot); got != c.want {
			t.Errorf("AlphabetSize(%+v) = %d, want %d", c.slot, got, c.want)
		}
	}
}
