package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algokit/toposort"
)

// toposortCmd orders the nodes of a dependency graph document.
func (a *app) toposortCmd() *cobra.Command {
	var (
		path      string
		depsFirst bool
		roots     []int
	)
	cmd := &cobra.Command{
		Use:   "toposort -f FILE",
		Short: "Order a dependency graph or report its cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc graphDoc
			if err := loadDocument(path, cmd.InOrStdin(), &doc); err != nil {
				return err
			}
			g, err := doc.graph()
			if err != nil {
				return err
			}
			a.log.Debug("graph loaded", zap.Int("nodes", len(g)), zap.Int("edges", len(doc.Edges)))

			var opts []toposort.Option
			if cmd.Flags().Changed("roots") {
				opts = append(opts, toposort.WithRoots(roots...))
			}
			sortFn := toposort.Sort
			if depsFirst {
				sortFn = toposort.DependencyOrder
			}

			order, err := sortFn(g, opts...)
			if errors.Is(err, toposort.ErrCycleDetected) {
				cycle, cerr := toposort.FindCycle(g, opts...)
				if cerr != nil {
					return errors.Join(err, cerr)
				}
				a.log.Warn("dependency cycle", zap.Ints("cycle", cycle))

				return fmt.Errorf("%w: %s", err, doc.join(cycle, " -> "))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.join(order, " "))

			return err
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", `graph document ("-" for stdin)`)
	cmd.Flags().BoolVar(&depsFirst, "deps-first", false, "print prerequisites before dependents")
	cmd.Flags().IntSliceVar(&roots, "roots", nil, "only order nodes reachable from these nodes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// join renders node IDs through their labels.
func (d graphDoc) join(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = d.label(id)
	}

	return strings.Join(parts, sep)
}
