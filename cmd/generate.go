package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitmask/splitmask/pkg/count"
	"github.com/splitmask/splitmask/pkg/generator"
	"github.com/splitmask/splitmask/pkg/mask"
	"github.com/splitmask/splitmask/pkg/wordlist"
)

var (
	genMasksFile   string
	genMinLen      int
	genMaxLen      int
	genCustomSets  []string
	genWordlists   []string
	genOutputFile  string
	genStats       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [mask]",
	Short: "Expand a mask into its candidate stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	registerGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func registerGenerateFlags(c *cobra.Command) {
	c.Flags().StringVarP(&genMasksFile, "masks-file", "i", "", "read one mask per line from PATH instead of the positional argument")
	c.Flags().IntVarP(&genMinLen, "minlen", "m", -1, "minimum candidate length (unset by default)")
	c.Flags().IntVarP(&genMaxLen, "maxlen", "x", -1, "maximum candidate length (unset by default)")
	c.Flags().StringArrayVarP(&genCustomSets, "custom-charset", "c", nil, "custom charset, 1-indexed by occurrence (repeatable, up to 9)")
	c.Flags().StringArrayVarP(&genWordlists, "wordlist", "w", nil, "word list path, 1-indexed by occurrence (repeatable, up to 9)")
	c.Flags().StringVarP(&genOutputFile, "output-file", "o", "", "write candidates to PATH instead of stdout")
	c.Flags().BoolVarP(&genStats, "stats", "s", false, "print the exact candidate count and exit")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg := mask.NewRegistry()

	var lists [9]*wordlist.List
	for i, path := range genWordlists {
		if i >= 9 {
			return &userInputError{fmt.Errorf("at most 9 word lists may be bound, got %d", len(genWordlists))}
		}
		l, err := wordlist.Load(path)
		if err != nil {
			return &ioError{fmt.Errorf("load word list %s: %w", path, err)}
		}
		lists[i] = l
		reg.BindWordlist(i+1, l)
	}
	for i, cs := range genCustomSets {
		if i >= 9 {
			return &userInputError{fmt.Errorf("at most 9 custom charsets may be bound, got %d", len(genCustomSets))}
		}
		reg.BindCustom(i+1, []byte(cs))
	}

	var minlen, maxlen *int
	if genMinLen >= 0 {
		minlen = &genMinLen
	}
	if genMaxLen >= 0 {
		maxlen = &genMaxLen
	}

	out := os.Stdout
	if genOutputFile != "" {
		f, err := os.Create(genOutputFile)
		if err != nil {
			return &ioError{fmt.Errorf("open output file: %w", err)}
		}
		defer f.Close()
		out = f
	}
	sink := generator.NewSink(out)

	if genMasksFile != "" {
		if genStats {
			return runStatsForFile(genMasksFile, reg, minlen, maxlen)
		}
		if err := generator.RunMaskFile(genMasksFile, generator.Options{MinLen: minlen, MaxLen: maxlen}, reg, lists, sink); err != nil {
			return classifyGeneratorError(err)
		}
		return flushSink(sink)
	}

	if len(args) != 1 {
		return &userInputError{fmt.Errorf("expected a mask argument or -i/--masks-file")}
	}

	slots, err := mask.Parse(args[0])
	if err != nil {
		return &userInputError{err}
	}
	fam, err := reg.Resolve(slots, minlen, maxlen)
	if err != nil {
		return &userInputError{err}
	}

	if genStats {
		fmt.Fprintln(os.Stdout, count.Family(fam, reg).String())
		return nil
	}

	if err := generator.Generate(fam, reg, lists, sink); err != nil {
		return classifyGeneratorError(err)
	}
	return flushSink(sink)
}

func runStatsForFile(path string, reg *mask.Registry, minlen, maxlen *int) error {
	masks, err := readMasksForStats(path)
	if err != nil {
		return &ioError{err}
	}
	total := big.NewInt(0)
	for _, m := range masks {
		slots, err := mask.Parse(m)
		if err != nil {
			return &userInputError{fmt.Errorf("mask %q: %w", m, err)}
		}
		fam, err := reg.Resolve(slots, minlen, maxlen)
		if err != nil {
			return &userInputError{fmt.Errorf("mask %q: %w", m, err)}
		}
		total.Add(total, count.Family(fam, reg))
	}
	fmt.Fprintln(os.Stdout, total.String())
	return nil
}

func readMasksForStats(path string) ([]string, error) {
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

func flushSink(sink *generator.Sink) error {
	if err := sink.Flush(); err != nil {
		return &ioError{err}
	}
	return nil
}

// classifyGeneratorError distinguishes RunMaskFile's two failure
// sources: a mask deeper in the file failing to parse or resolve is a
// user-input error, exactly like a bad mask given directly; anything
// else at this stage is sink I/O (spec.md §7's "hot path itself cannot
// signal errors except I/O write failure").
func classifyGeneratorError(err error) error {
	var syntaxErr *mask.SyntaxError
	var unboundErr *mask.UnboundSlotError
	var emptyErr *mask.EmptyAlphabetError
	var boundsErr *mask.BoundsOutOfRangeError
	if errors.As(err, &syntaxErr) || errors.As(err, &unboundErr) ||
		errors.As(err, &emptyErr) || errors.As(err, &boundsErr) {
		return &userInputError{err}
	}
	return &ioError{err}
}
