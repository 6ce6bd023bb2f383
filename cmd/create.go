package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/splitmask/splitmask/pkg/smartlist"
	"github.com/splitmask/splitmask/pkg/trainer"
	trainerplugin "github.com/splitmask/splitmask/pkg/trainer/plugin"
)

var (
	createFiles         []string
	createOutput        string
	createTokenizers    []string
	createPlugins       []string
	createVocabMaxSize  int
	createMinFrequency  int
	createMinWordLen    int
	createNumbersMaxLen int
	createQuiet         bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a smartlist from password corpora",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringArrayVarP(&createFiles, "file", "f", nil, "corpus file (repeatable, required)")
	createCmd.Flags().StringVarP(&createOutput, "smartlist", "o", "", "output smartlist path (required)")
	createCmd.Flags().StringArrayVarP(&createTokenizers, "tokenizer", "t", []string{"bpe"}, "bpe|unigram|wordpiece, or a name registered via --plugin (repeatable)")
	createCmd.Flags().StringArrayVar(&createPlugins, "plugin", nil, "name=path of an external trainer plugin binary, registered under name for -t (repeatable)")
	createCmd.Flags().IntVarP(&createVocabMaxSize, "vocab-max-size", "m", trainer.DefaultVocabSize, "maximum vocabulary size")
	createCmd.Flags().IntVar(&createMinFrequency, "min-frequency", trainer.DefaultMinFrequency, "minimum token frequency (BPE only)")
	createCmd.Flags().IntVarP(&createMinWordLen, "min-word-len", "l", 1, "drop tokens shorter than this")
	createCmd.Flags().IntVar(&createNumbersMaxLen, "numbers-max-size", 0, "drop all-digit tokens longer than this (0 disables)")
	createCmd.Flags().BoolVarP(&createQuiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if len(createFiles) == 0 {
		return &userInputError{fmt.Errorf("-f/--file is required (repeatable)")}
	}
	if createOutput == "" {
		return &userInputError{fmt.Errorf("-o/--smartlist is required")}
	}

	reg := trainer.NewRegistry()

	loader := trainerplugin.NewLoader()
	defer loader.UnloadAll()
	registered := map[string]bool{"bpe": true, "unigram": true, "wordpiece": true}
	for _, spec := range createPlugins {
		name, path, ok := strings.Cut(spec, "=")
		if !ok || name == "" || path == "" {
			return &userInputError{fmt.Errorf("--plugin must be name=path, got %q", spec)}
		}
		tr, err := loader.Load(name, path)
		if err != nil {
			return &ioError{fmt.Errorf("load trainer plugin %s: %w", name, err)}
		}
		reg.Register(trainer.Algorithm(name), tr)
		registered[name] = true
	}

	algorithms, err := parseAlgorithms(createTokenizers, registered)
	if err != nil {
		return &userInputError{err}
	}

	vocab, err := trainer.Build(context.Background(), reg, trainer.BuildOptions{
		Algorithms:    algorithms,
		Corpora:       createFiles,
		Options:       trainer.Options{MaxVocab: createVocabMaxSize, MinFreq: createMinFrequency},
		MinWordLen:    createMinWordLen,
		NumbersMaxLen: createNumbersMaxLen,
	})
	if err != nil {
		return &userInputError{fmt.Errorf("train: %w", err)}
	}

	if err := writeSmartlist(createOutput, vocab); err != nil {
		return &ioError{err}
	}

	logger := hclog.NewNullLogger()
	if !createQuiet {
		logger = hclog.New(&hclog.LoggerOptions{Name: "splitmask-create"})
	}
	auditBestEffort(createFiles, createTokenizers, len(vocab), logger)

	if !createQuiet {
		fmt.Fprintf(os.Stdout, "wrote %d tokens to %s\n", len(vocab), createOutput)
	}
	return nil
}

// parseAlgorithms resolves -t names against the three built-ins plus
// whatever names --plugin registered, per spec.md §6's -t contract
// extended to accept externally loaded trainers (SPEC_FULL.md §7).
func parseAlgorithms(names []string, registered map[string]bool) ([]trainer.Algorithm, error) {
	var out []trainer.Algorithm
	for _, n := range names {
		lower := strings.ToLower(n)
		if !registered[lower] {
			return nil, fmt.Errorf("unknown tokenizer %q (want bpe, unigram, wordpiece, or a --plugin name)", n)
		}
		out = append(out, trainer.Algorithm(lower))
	}
	return out, nil
}

func writeSmartlist(path string, tokens []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create smartlist file: %w", err)
	}
	defer f.Close()

	for _, tok := range tokens {
		if _, err := f.WriteString(tok + "\n"); err != nil {
			return fmt.Errorf("write smartlist file: %w", err)
		}
	}
	return nil
}

// auditBestEffort records a build's fingerprint to the local audit log
// under $HOME/.local/share/splitmask, never failing the run over it,
// per audit.go's best-effort logging contract.
func auditBestEffort(corpora, algorithms []string, vocabSize int, logger hclog.Logger) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := home + "/.local/share/splitmask"
	log, err := smartlist.OpenAuditLog(dir+"/audit.db", logger)
	if err != nil {
		logger.Warn("audit log unavailable", "error", err)
		return
	}
	defer log.Close()
	log.RecordBestEffort(corpora, algorithms, vocabSize)
}
