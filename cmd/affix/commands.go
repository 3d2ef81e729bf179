package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/h8liu/go-affix/affix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	useBytes bool
	asJSON   bool
)

var prefixCmd = &cobra.Command{
	Use:   "prefix A B",
	Short: "Print the length of the common prefix of A and B",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefix,
}

var suffixCmd = &cobra.Command{
	Use:   "suffix A B",
	Short: "Print the length of the common suffix of A and B",
	Args:  cobra.ExactArgs(2),
	RunE:  runSuffix,
}

var overlapCmd = &cobra.Command{
	Use:   "overlap A B",
	Short: "Print how many characters at the end of A start B",
	Args:  cobra.ExactArgs(2),
	RunE:  runOverlap,
}

var splitCmd = &cobra.Command{
	Use:   "split A B",
	Short: "Split A and B into shared prefix, differing middles and shared suffix",
	Args:  cobra.ExactArgs(2),
	RunE:  runSplit,
}

var lcpCmd = &cobra.Command{
	Use:   "lcp S...",
	Short: "Print the longest prefix shared by all arguments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLongestPrefix,
}

var lcsCmd = &cobra.Command{
	Use:   "lcs S...",
	Short: "Print the longest suffix shared by all arguments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLongestSuffix,
}

// loadInputs returns the texts to compare: the arguments themselves, or the
// contents of the files they name when --file is set.
func loadInputs(args []string) ([]string, error) {
	if !fromFile {
		return args, nil
	}
	texts := make([]string, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		logger.Debug("loaded input", zap.String("path", path), zap.Int("bytes", len(data)))
		texts[i] = string(data)
	}
	return texts, nil
}

func runPrefix(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	n := affix.CommonPrefixLength(in[0], in[1])
	if useBytes {
		n = affix.CommonPrefixBytes(in[0], in[1])
	}
	logger.Debug("common prefix", zap.Int("length", n), zap.Bool("bytes", useBytes))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runSuffix(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	n := affix.CommonSuffixLength(in[0], in[1])
	if useBytes {
		n = affix.CommonSuffixBytes(in[0], in[1])
	}
	logger.Debug("common suffix", zap.Int("length", n), zap.Bool("bytes", useBytes))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runOverlap(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	n := affix.CommonOverlap(in[0], in[1])
	logger.Debug("common overlap", zap.Int("length", n))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

// splitResult is the JSON form of affix.Parts.
type splitResult struct {
	Prefix string `json:"prefix"`
	A      string `json:"a"`
	B      string `json:"b"`
	Suffix string `json:"suffix"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	p := affix.Split(in[0], in[1])
	logger.Debug("split",
		zap.Int("prefix_bytes", len(p.Prefix)),
		zap.Int("suffix_bytes", len(p.Suffix)),
		zap.Bool("equal", p.Equal()),
	)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		if err := enc.Encode(splitResult(p)); err != nil {
			return fmt.Errorf("encode split: %w", err)
		}
		return nil
	}
	fmt.Fprintf(out, "prefix: %q\n", p.Prefix)
	fmt.Fprintf(out, "a: %q\n", p.A)
	fmt.Fprintf(out, "b: %q\n", p.B)
	fmt.Fprintf(out, "suffix: %q\n", p.Suffix)
	return nil
}

func runLongestPrefix(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	s := affix.LongestCommonPrefix(in...)
	logger.Debug("longest common prefix", zap.Int("inputs", len(in)), zap.Int("bytes", len(s)))
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func runLongestSuffix(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(args)
	if err != nil {
		return err
	}
	s := affix.LongestCommonSuffix(in...)
	logger.Debug("longest common suffix", zap.Int("inputs", len(in)), zap.Int("bytes", len(s)))
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
