package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/splitmask/splitmask/pkg/mask"
	"github.com/splitmask/splitmask/pkg/wordlist"
)

func lines(t *testing.T, out []byte) []string {
	t.Helper()
	s := string(out)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// S1: mask ?d?d, no options -> exactly 100 lines, first "00", last "99".
func TestRunFixed_DigitPairs(t *testing.T) {
	slots, err := mask.Parse("?d?d")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	reg := mask.NewRegistry()

	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := RunFixed(slots, reg, sink); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}

	got := lines(t, buf.Bytes())
	if len(got) != 100 {
		t.Fatalf("got %d lines, want 100", len(got))
	}
	if got[0] != "00" {
		t.Errorf("first = %q, want 00", got[0])
	}
	if got[99] != "99" {
		t.Errorf("last = %q, want 99", got[99])
	}
	// no duplicates, every combination present.
	seen := make(map[string]bool, 100)
	for _, l := range got {
		if seen[l] {
			t.Fatalf("duplicate candidate %q", l)
		}
		seen[l] = true
	}
}

// Small buffer forces multiple flushes mid-run; output must still be
// exactly correct and unbroken across flush boundaries.
func TestRunFixed_SmallBuffer(t *testing.T) {
	slots, _ := mask.Parse("?d?d?d")
	reg := mask.NewRegistry()

	var buf bytes.Buffer
	sink := NewSinkSize(&buf, 16) // far smaller than 1000 records
	if err := RunFixed(slots, reg, sink); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}

	got := lines(t, buf.Bytes())
	if len(got) != 1000 {
		t.Fatalf("got %d lines, want 1000", len(got))
	}
	if got[0] != "000" || got[999] != "999" {
		t.Errorf("first/last = %q/%q, want 000/999", got[0], got[999])
	}
}

// S3: -c 0123456789abcdef mask ?1?1?1?1 -> 65536 lines, first 0000, last ffff.
func TestRunFixed_CustomCharset(t *testing.T) {
	slots, _ := mask.Parse("?1?1?1?1")
	reg := mask.NewRegistry()
	reg.BindCustom(1, []byte("0123456789abcdef"))

	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := RunFixed(slots, reg, sink); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}

	got := lines(t, buf.Bytes())
	if len(got) != 65536 {
		t.Fatalf("got %d lines, want 65536", len(got))
	}
	if got[0] != "0000" {
		t.Errorf("first = %q, want 0000", got[0])
	}
	if got[len(got)-1] != "ffff" {
		t.Errorf("last = %q, want ffff", got[len(got)-1])
	}
}

// A custom charset with a repeated byte emits that byte once per
// occurrence, so the line count matches pkg/count's reported
// cardinality (which multiplies by the duplicate).
func TestRunFixed_DuplicateCharsetByteRepeats(t *testing.T) {
	slots, _ := mask.Parse("?1?d")
	reg := mask.NewRegistry()
	reg.BindCustom(1, []byte("aa"))

	var buf bytes.Buffer
	if err := RunFixed(slots, reg, NewSink(&buf)); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}
	got := lines(t, buf.Bytes())
	if len(got) != 20 {
		t.Fatalf("got %d lines, want 20 (two occurrences of 'a' x 10 digits)", len(got))
	}
}

// Empty mask emits exactly one candidate: the empty line.
func TestRunFixed_EmptyMask(t *testing.T) {
	slots, err := mask.Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := RunFixed(slots, mask.NewRegistry(), NewSink(&buf)); err != nil {
		t.Fatalf("RunFixed: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("got %q, want a single empty line", buf.String())
	}
}

// S2: mask ?u?l?l?l with minlen 1 maxlen 4 -> lengths ascending,
// first "A", last "Zzzz".
func TestGenerate_LengthFamily(t *testing.T) {
	slots, _ := mask.Parse("?u?l?l?l")
	reg := mask.NewRegistry()
	min, max := 1, 4
	fam, err := reg.Resolve(slots, &min, &max)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	var buf bytes.Buffer
	if err := Generate(fam, reg, [9]*wordlist.List{}, NewSink(&buf)); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got := lines(t, buf.Bytes())
	want := 26 + 26*26 + 26*26*26 + 26*26*26*26
	if len(got) != want {
		t.Fatalf("got %d lines, want %d", len(got), want)
	}
	if got[0] != "A" {
		t.Errorf("first = %q, want A", got[0])
	}
	if got[len(got)-1] != "Zzzz" {
		t.Errorf("last = %q, want Zzzz", got[len(got)-1])
	}
	// lengths must appear in ascending order.
	prevLen := 0
	for _, l := range got {
		if len(l) < prevLen {
			t.Fatalf("length decreased: saw len %d after len %d", len(l), prevLen)
		}
		prevLen = len(l)
	}
}

func mustWordlist(t *testing.T, words ...string) *wordlist.List {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "w.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	for _, w := range words {
		f.WriteString(w + "\n")
	}
	f.Close()
	l, err := wordlist.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return l
}

// Wordlist path: single word-list slot, mixed token lengths. Ordering
// guarantee: shorter tokens (smaller length group) are fully enumerated
// before longer ones, file order preserved within a group.
func TestRunWordlist_LengthStratifiedOrder(t *testing.T) {
	l := mustWordlist(t, "bob", "amy", "carol") // groups: len3=[bob,amy], len5=[carol]
	slots, _ := mask.Parse("?w1?d")
	reg := mask.NewRegistry()
	reg.BindWordlist(1, l)

	var buf bytes.Buffer
	lists := [9]*wordlist.List{l}
	if err := RunWordlist(slots, reg, lists, NewSink(&buf)); err != nil {
		t.Fatalf("RunWordlist: %v", err)
	}

	got := lines(t, buf.Bytes())
	wantCount := 3 * 10 // 3 tokens total, 10 digits
	if len(got) != wantCount {
		t.Fatalf("got %d lines, want %d", len(got), wantCount)
	}
	if got[0] != "bob0" {
		t.Errorf("first = %q, want bob0", got[0])
	}
	if got[9] != "bob9" {
		t.Errorf("got[9] = %q, want bob9", got[9])
	}
	if got[10] != "amy0" {
		t.Errorf("got[10] = %q, want amy0 (second length-3 token)", got[10])
	}
	if got[len(got)-1] != "carol9" {
		t.Errorf("last = %q, want carol9", got[len(got)-1])
	}
}

// Two word-list slots: outer tuple order is lexicographic ascending by
// length vector, leftmost slot's length varying slower than the right's.
func TestRunWordlist_TwoSlotsLengthTupleOrder(t *testing.T) {
	l1 := mustWordlist(t, "ab", "wxyz") // groups: len2=[ab], len4=[wxyz]
	l2 := mustWordlist(t, "xy", "pqrs") // groups: len2=[xy], len4=[pqrs]
	slots, _ := mask.Parse("?w1?w2")
	reg := mask.NewRegistry()
	reg.BindWordlist(1, l1)
	reg.BindWordlist(2, l2)

	var buf bytes.Buffer
	lists := [9]*wordlist.List{l1, l2}
	if err := RunWordlist(slots, reg, lists, NewSink(&buf)); err != nil {
		t.Fatalf("RunWordlist: %v", err)
	}

	got := lines(t, buf.Bytes())
	want := []string{"abxy", "abpqrs", "wxyzxy", "wxyzpqrs"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
