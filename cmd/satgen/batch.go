package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/wyrmforge/satgen/cmd/satgen/internal/dsl"
	"github.com/wyrmforge/satgen/pkg/solver"
)

// newBatchCmd demonstrates spec.md §5's concurrency model directly:
// "callers that need parallelism run independent Problem instances." Each
// of the count Problems gets its own RNG seed (base+index) and its own
// goroutine; no Problem is ever touched by more than one goroutine, and no
// single Problem's Solve is itself parallelized (spec.md §1 Non-goal:
// multi-threaded search).
func newBatchCmd(log logrus.FieldLogger) *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "batch <problem.yaml>",
		Short: "Solve N independent copies of a problem definition concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := dsl.Load(args[0])
			if err != nil {
				return err
			}

			models := make([][]string, count)
			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < count; i++ {
				i := i
				g.Go(func() error {
					p, err := dsl.Build(def,
						solver.WithLogger(log),
						solver.WithSeed(seed+int64(i)),
					)
					if err != nil {
						return fmt.Errorf("instance %d: %w", i, err)
					}
					sol, err := p.Solve(ctx)
					if err != nil {
						return fmt.Errorf("instance %d: %w", i, err)
					}
					models[i] = sol.TrueAttributes()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string]interface{}{"models": models})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 4, "number of independent Problem instances to solve")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base seed; instance i uses seed+i")
	return cmd
}
