package mask

import "fmt"

// Parse scans mask left to right, producing its slot sequence. It is total
// over the legal mask alphabet (spec grammar: ?d ?l ?u ?s ?a ?b, ?1-?9,
// ?w1-?w9, ?? for a literal '?', any other byte a literal) and rejects
// everything else with a *SyntaxError carrying the offending byte offset.
func Parse(s string) ([]Slot, error) {
	slots := make([]Slot, 0, len(s))

	for i := 0; i < len(s); {
		b := s[i]
		if b != '?' {
			slots = append(slots, Slot{Kind: KindLiteral, Literal: b})
			i++
			continue
		}

		if i+1 >= len(s) {
			return nil, &SyntaxError{Offset: i, Msg: "'?' at end of mask with no specifier"}
		}
		spec := s[i+1]

		switch {
		case spec == '?':
			slots = append(slots, Slot{Kind: KindLiteral, Literal: '?'})
			i += 2

		case spec >= '1' && spec <= '9':
			slots = append(slots, Slot{Kind: KindCustom, Index: int(spec - '1')})
			i += 2

		case spec == 'w':
			if i+2 >= len(s) {
				return nil, &SyntaxError{Offset: i, Msg: "'?w' with no word list index"}
			}
			idx := s[i+2]
			if idx < '1' || idx > '9' {
				return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("'?w%c' is not a valid word list index", idx)}
			}
			slots = append(slots, Slot{Kind: KindWordlist, Index: int(idx - '1')})
			i += 3

		case IsBuiltinKind(spec):
			slots = append(slots, Slot{Kind: KindBuiltin, Builtin: BuiltinKind(spec)})
			i += 2

		default:
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unrecognized specifier '?%c'", spec)}
		}
	}

	return slots, nil
}
