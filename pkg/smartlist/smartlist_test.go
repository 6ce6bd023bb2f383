package smartlist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_DedupesAcrossFiles(t *testing.T) {
	p1 := writeList(t, "hello", "world1")
	p2 := writeList(t, "world1", "goodbye")

	set, err := Load([]string{p1, p2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}

	byText := make(map[string]Token)
	for _, tok := range set.Tokens() {
		byText[string(tok.Bytes)] = tok
	}
	if byText["hello"].File != 0 {
		t.Errorf("hello tagged file %d, want 0", byText["hello"].File)
	}
	// world1 first appears in file 0; the duplicate in file 1 must not retag it.
	if byText["world1"].File != 0 {
		t.Errorf("world1 tagged file %d, want 0 (first-seen file)", byText["world1"].File)
	}
	if byText["goodbye"].File != 1 {
		t.Errorf("goodbye tagged file %d, want 1", byText["goodbye"].File)
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	p := writeList(t, "", "a", "", "b", "")
	set, err := Load([]string{p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
}

// S5's smartlist: {hello, world1}. Matching is case-sensitive, so the
// password is given lowercased as "helloworld123!", where "hello" and
// "world1" both occur as substrings.
func TestMatcher_FindAll(t *testing.T) {
	p := writeList(t, "hello", "world1")
	set, err := Load([]string{p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := set.Matcher()

	matches := m.FindAll("helloworld123!")
	if len(matches) != 2 {
		t.Fatalf("FindAll = %d matches, want 2: %+v", len(matches), matches)
	}
	if string(matches[0].Token.Bytes) != "hello" || matches[0].Start != 0 || matches[0].End != 5 {
		t.Errorf("match 0 = %+v, want hello@[0,5)", matches[0])
	}
	if string(matches[1].Token.Bytes) != "world1" || matches[1].Start != 5 || matches[1].End != 11 {
		t.Errorf("match 1 = %+v, want world1@[5,11)", matches[1])
	}
}

func TestMatcher_OverlappingMatches(t *testing.T) {
	p := writeList(t, "abc", "bcd")
	set, err := Load([]string{p})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := set.Matcher()

	matches := m.FindAll("abcd")
	if len(matches) != 2 {
		t.Fatalf("FindAll = %d matches, want 2 overlapping hits: %+v", len(matches), matches)
	}
}
