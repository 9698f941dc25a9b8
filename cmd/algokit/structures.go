package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algokit/dsu"
)

// rangesumCmd replays a rangesum script and prints one line per query.
func (a *app) rangesumCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "rangesum -f FILE",
		Short: "Apply point updates and range-sum queries to decimal values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc rangeDoc
			if err := loadDocument(path, cmd.InOrStdin(), &doc); err != nil {
				return err
			}
			tr, err := doc.tree()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := tr.Len()
			for i, op := range doc.Ops {
				switch op.Op {
				case "update":
					if op.Index < 0 || op.Index >= n {
						return fmt.Errorf("ops[%d]: index %d out of range [0, %d)", i, op.Index, n)
					}
					v, err := parseNumbers([]string{op.Value})
					if err != nil {
						return fmt.Errorf("ops[%d]: %w", i, err)
					}
					tr.Update(op.Index, v[0])
					a.log.Debug("update", zap.Int("index", op.Index), zap.String("value", op.Value))
				case "sum":
					if op.Left < 0 || op.Right >= n || op.Left > op.Right {
						return fmt.Errorf("ops[%d]: range [%d, %d] invalid for length %d", i, op.Left, op.Right, n)
					}
					if _, err = fmt.Fprintln(out, tr.SumRange(op.Left, op.Right).String()); err != nil {
						return err
					}
				case "get":
					if op.Index < 0 || op.Index >= n {
						return fmt.Errorf("ops[%d]: index %d out of range [0, %d)", i, op.Index, n)
					}
					if _, err = fmt.Fprintln(out, tr.Get(op.Index).String()); err != nil {
						return err
					}
				case "total":
					if _, err = fmt.Fprintln(out, tr.Total().String()); err != nil {
						return err
					}
				default:
					return fmt.Errorf("ops[%d]: unknown op %q", i, op.Op)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", `script document ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// dsuCmd applies unions and answers connectivity queries.
func (a *app) dsuCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "dsu -f FILE",
		Short: "Union elements and report connectivity and set count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc dsuDoc
			if err := loadDocument(path, cmd.InOrStdin(), &doc); err != nil {
				return err
			}
			if err := doc.validate(); err != nil {
				return err
			}

			uf := dsu.New(doc.Size)
			merged := 0
			for _, u := range doc.Unions {
				if uf.UnionSet(u[0], u[1]) {
					merged++
				}
			}
			a.log.Debug("unions applied", zap.Int("requested", len(doc.Unions)), zap.Int("merged", merged))

			out := cmd.OutOrStdout()
			for _, q := range doc.Queries {
				state := "disjoint"
				if uf.Connected(q[0], q[1]) {
					state = "connected"
				}
				if _, err := fmt.Fprintf(out, "%d %d %s\n", q[0], q[1], state); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(out, "sets: %d\n%v\n", uf.NSets(), uf.Sets())

			return err
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", `unions document ("-" for stdin)`)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
