package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wyrmforge/satgen/cmd/satgen/internal/dsl"
	"github.com/wyrmforge/satgen/pkg/solver"
)

func newSolveCmd(log logrus.FieldLogger) *cobra.Command {
	var seed int64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a problem definition once and print the resulting model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := dsl.Load(args[0])
			if err != nil {
				return err
			}

			options := []solver.Option{solver.WithLogger(log)}
			if seed != 0 {
				options = append(options, solver.WithSeed(seed))
			}
			if verbose {
				options = append(options, solver.WithTracer(solver.LoggingTracer{Writer: cmd.ErrOrStderr()}))
			}

			p, err := dsl.Build(def, options...)
			if err != nil {
				return err
			}
			sol, err := p.Solve(context.Background())
			if err != nil {
				return err
			}
			return printModel(cmd, sol)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic search seed (0 = random)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace the search loop to stderr")
	return cmd
}

func printModel(cmd *cobra.Command, sol *solver.Solution) error {
	out, err := yaml.Marshal(map[string]interface{}{
		"trueAttributes": sol.TrueAttributes(),
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
