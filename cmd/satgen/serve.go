package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wyrmforge/satgen/cmd/satgen/internal/dsl"
	"github.com/wyrmforge/satgen/pkg/solver"
)

// newServeCmd mirrors cmd/olm/main.go's -profiling/promhttp.Handler()
// wiring: a Problem's diagnostic Metrics are registered on a dedicated
// registry and exposed over HTTP, never bundled into library behavior
// itself (spec.md §5: "No I/O except optional diagnostic printing").
func newServeCmd(log logrus.FieldLogger) *cobra.Command {
	var addr string
	var seed int64

	cmd := &cobra.Command{
		Use:   "serve <problem.yaml>",
		Short: "Solve a problem once, then serve its search metrics over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := dsl.Load(args[0])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics := solver.NewMetrics(reg)

			options := []solver.Option{solver.WithLogger(log), solver.WithMetrics(metrics)}
			if seed != 0 {
				options = append(options, solver.WithSeed(seed))
			}
			p, err := dsl.Build(def, options...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sol, err := p.Solve(ctx)
			if err != nil {
				return err
			}
			if err := printModel(cmd, sol); err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.WithField("addr", addr).Info("serving satgen metrics")
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to serve /metrics on")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic search seed (0 = random)")
	return cmd
}
