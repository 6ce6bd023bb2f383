package generator

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/splitmask/splitmask/pkg/mask"
	"github.com/splitmask/splitmask/pkg/wordlist"
)

// Options configures RunMaskFile.
type Options struct {
	// MinLen/MaxLen bound the mask length, mirroring the single-mask CLI
	// flags. nil means unset.
	MinLen, MaxLen *int

	// PerMaskOutput, when set, gives each mask its own numbered output
	// file under this directory instead of one shared stream, unlocking
	// bounded-concurrency sharding across masks.
	PerMaskOutput string

	// Concurrency bounds the worker pool used when PerMaskOutput is set.
	// Zero means unbounded (one worker per mask).
	Concurrency int
}

// RunMaskFile reads one mask per line from path, processing masks in
// file order with no deduplication across masks. With PerMaskOutput
// unset, all masks share sink and are run strictly sequentially,
// preserving the ordering guarantee across the whole file. With
// PerMaskOutput set, each mask gets its own Sink over its own file and
// masks run concurrently in a bounded pool — safe because no Sink is
// ever shared across goroutines.
func RunMaskFile(path string, opts Options, reg *mask.Registry, lists [9]*wordlist.List, sink *Sink) error {
	masks, err := readMaskFile(path)
	if err != nil {
		return err
	}

	if opts.PerMaskOutput == "" {
		for _, m := range masks {
			if err := runOne(m, opts, reg, lists, sink); err != nil {
				return fmt.Errorf("mask %q: %w", m, err)
			}
		}
		return nil
	}

	p := pool.New().WithErrors()
	if opts.Concurrency > 0 {
		p = p.WithMaxGoroutines(opts.Concurrency)
	}
	for i, m := range masks {
		i, m := i, m
		p.Go(func() error {
			out := filepath.Join(opts.PerMaskOutput, fmt.Sprintf("%04d.txt", i))
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("mask %q: %w", m, err)
			}
			defer f.Close()

			s := NewSink(f)
			if err := runOne(m, opts, reg, lists, s); err != nil {
				return fmt.Errorf("mask %q: %w", m, err)
			}
			return s.Flush()
		})
	}
	return p.Wait()
}

func runOne(m string, opts Options, reg *mask.Registry, lists [9]*wordlist.List, sink *Sink) error {
	slots, err := mask.Parse(m)
	if err != nil {
		return err
	}
	fam, err := reg.Resolve(slots, opts.MinLen, opts.MaxLen)
	if err != nil {
		return err
	}
	return Generate(fam, reg, lists, sink)
}

func readMaskFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read mask file %s: %w", path, err)
	}
	defer f.Close()

	var masks []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		masks = append(masks, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mask file %s: %w", path, err)
	}
	return masks, nil
}
