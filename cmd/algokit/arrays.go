package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algokit/lis"
	"github.com/katalvlaran/algokit/partition"
	"github.com/katalvlaran/algokit/selection"
)

// lisCmd prints the longest strictly increasing subsequence length.
func (a *app) lisCmd() *cobra.Command {
	var withIndices bool
	cmd := &cobra.Command{
		Use:   "lis NUMBER...",
		Short: "Length of the longest strictly increasing subsequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseNumbers(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, lis.LengthFunc(seq, byValue)); err != nil {
				return err
			}
			if !withIndices {
				return nil
			}
			idx := lis.IndicesFunc(seq, byValue)
			picked := make([]decimal.Decimal, len(idx))
			for i, j := range idx {
				picked[i] = seq[j]
			}
			_, err = fmt.Fprintln(out, joinDecimals(picked))

			return err
		},
	}
	cmd.Flags().BoolVar(&withIndices, "indices", false, "also print one longest subsequence")

	return cmd
}

// selectCmd prints the k-th smallest number.
func (a *app) selectCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "select -k K NUMBER...",
		Short: "K-th smallest number (0-based) via quickselect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if k < 0 || k >= len(seq) {
				return fmt.Errorf("k %d out of range [0, %d)", k, len(seq))
			}
			v := selection.SelectFunc(seq, 0, len(seq)-1, k, byValue)
			a.log.Debug("selected", zap.Int("k", k), zap.Int("n", len(seq)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())

			return err
		},
	}
	cmd.Flags().IntVarP(&k, "rank", "k", 0, "rank to select, 0 is the minimum")
	_ = cmd.MarkFlagRequired("rank")

	return cmd
}

// partitionCmd partitions the numbers around the pivot and prints the
// returned index and the rearranged sequence.
func (a *app) partitionCmd() *cobra.Command {
	var (
		scheme string
		pivot  int
	)
	cmd := &cobra.Command{
		Use:   "partition --pivot I NUMBER...",
		Short: "Partition numbers around the pivot at index I",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := partition.ByScheme[decimal.Decimal](partition.Scheme(scheme))
			if !ok {
				return fmt.Errorf("unknown scheme %q: want %q or %q", scheme, partition.SchemeHoare, partition.SchemeLomuto)
			}
			seq, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if pivot < 0 || pivot >= len(seq) {
				return fmt.Errorf("pivot %d out of range [0, %d)", pivot, len(seq))
			}
			idx := fn(seq, 0, len(seq)-1, pivot, byValue)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n%s\n", idx, joinDecimals(seq))

			return err
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", string(partition.SchemeLomuto), "hoare or lomuto")
	cmd.Flags().IntVar(&pivot, "pivot", 0, "index of the pivot element")

	return cmd
}

// joinDecimals renders values separated by spaces.
func joinDecimals(vals []decimal.Decimal) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}

	return strings.Join(parts, " ")
}
