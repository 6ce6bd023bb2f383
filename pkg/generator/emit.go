package generator

import "fmt"

// emitRecord runs the odometer over reels to completion, writing every
// combination directly into sink's buffer and flushing as it fills.
// Shared by the pure fast path (all reels width 1) and the wordlist path
// (a fixed length tuple's reels, mixed widths) — the carry mechanics are
// identical either way.
func emitRecord(reels []reel, sink *Sink) error {
	n := len(reels)
	offsets := make([]int, n)
	width := 0
	for i := range reels {
		offsets[i] = width
		width += reels[i].width
	}
	recordLen := width + 1 // trailing '\n', already present in sink's buffer

	if recordLen > len(sink.Buf()) {
		return fmt.Errorf("generator: record length %d exceeds sink buffer size %d", recordLen, len(sink.Buf()))
	}

	state := make([]int, n)
	for i := range reels {
		state[i] = reels[i].first()
	}

	for {
		batch := sink.RecordsLeft(recordLen)
		if batch == 0 {
			if err := sink.Flush(); err != nil {
				return err
			}
			batch = sink.RecordsLeft(recordLen)
		}

		buf := sink.Buf()
		pos := sink.Pos()
		for i := 0; i < batch; i++ {
			for k := range reels {
				reels[k].write(state[k], buf[pos+offsets[k]:pos+offsets[k]+reels[k].width])
			}
			pos += recordLen

			wrapped := true
			for p := n - 1; p >= 0; p-- {
				nxt, w := reels[p].advance(state[p])
				state[p] = nxt
				if !w {
					wrapped = false
					break
				}
			}
			if wrapped {
				sink.Advance(pos - sink.Pos())
				return sink.Flush()
			}
		}
		sink.Advance(pos - sink.Pos())
	}
}
