package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitmask/splitmask/pkg/entropy"
	"github.com/splitmask/splitmask/pkg/smartlist"
)

var (
	entPasswordsFile string
	entSmartlists    []string
	entMaskType      string
	entSummary       bool
)

var entropyCmd = &cobra.Command{
	Use:   "entropy [password]",
	Short: "Find the minimum-entropy decomposition of a password",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEntropy,
}

func init() {
	entropyCmd.Flags().StringVarP(&entPasswordsFile, "passwords-file", "p", "", "read one password per line from PATH instead of the positional argument")
	entropyCmd.Flags().StringArrayVarP(&entSmartlists, "smartlist", "f", nil, "smartlist file (repeatable, required)")
	entropyCmd.Flags().StringVarP(&entMaskType, "mask-type", "t", "hybrid", "hybrid or charset")
	entropyCmd.Flags().BoolVarP(&entSummary, "summary", "s", false, "print only the mask and entropy, one line per password")
	rootCmd.AddCommand(entropyCmd)
}

func runEntropy(cmd *cobra.Command, args []string) error {
	if entMaskType != "hybrid" && entMaskType != "charset" {
		return &userInputError{fmt.Errorf("--mask-type must be hybrid or charset, got %q", entMaskType)}
	}
	if len(entSmartlists) == 0 {
		return &userInputError{fmt.Errorf("-f/--smartlist is required")}
	}

	set, err := smartlist.Load(entSmartlists)
	if err != nil {
		return &ioError{fmt.Errorf("load smartlists: %w", err)}
	}
	matcher := set.Matcher()

	passwords, err := collectPasswords(args)
	if err != nil {
		return err
	}

	for _, pwd := range passwords {
		if err := reportEntropy(pwd, matcher); err != nil {
			return err
		}
	}
	return nil
}

func collectPasswords(args []string) ([]string, error) {
	if entPasswordsFile != "" {
		f, err := os.Open(entPasswordsFile)
		if err != nil {
			return nil, &ioError{fmt.Errorf("open passwords file: %w", err)}
		}
		defer f.Close()

		var out []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out = append(out, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, &ioError{fmt.Errorf("read passwords file: %w", err)}
		}
		return out, nil
	}
	if len(args) != 1 {
		return nil, &userInputError{fmt.Errorf("expected a password argument or -p/--passwords-file")}
	}
	return []string{args[0]}, nil
}

// reportEntropy prints spec.md §6's full report (both hybrid and
// charset decompositions, separated by "--") by default, or with
// --summary a single condensed line for whichever mode --mask-type
// names.
func reportEntropy(pwd string, matcher *smartlist.Matcher) error {
	if entSummary {
		if entMaskType == "charset" {
			split := entropy.DecomposeCharsetOnly(pwd)
			fmt.Printf("%s\t%.2f\n", split.Mask, split.EntropyBits)
			return nil
		}
		split := entropy.DecomposeHybrid(pwd, matcher)
		fmt.Printf("%s\t%.2f\n", split.Mask, split.EntropyBits)
		return nil
	}

	hybrid := entropy.DecomposeHybrid(pwd, matcher)
	fmt.Printf("hybrid-min-split: %s\n", formatTokens(hybrid))
	fmt.Printf("hybrid-mask: %s\n", hybrid.Mask)
	fmt.Printf("hybrid-min-entropy: %.2f\n", hybrid.EntropyBits)
	fmt.Println("--")
	charset := entropy.DecomposeCharsetOnly(pwd)
	fmt.Printf("charset-mask: %s\n", charset.Mask)
	fmt.Printf("charset-mask-entropy: %.2f\n", charset.EntropyBits)
	return nil
}

func formatTokens(split entropy.Split) string {
	out := "["
	for i, tok := range split.Tokens {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", tok.Text)
	}
	return out + "]"
}
