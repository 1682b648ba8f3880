package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wyrmforge/satgen/cmd/satgen/internal/dsl"
	"github.com/wyrmforge/satgen/pkg/solver"
)

// newWatchCmd grounds its event loop on codenerd's MangleWatcher
// (internal/core/mangle_watcher.go): a select over the watcher's Events/
// Errors channels plus a context-done case. Unlike MangleWatcher this
// re-solves synchronously on every write rather than debouncing, since a
// problem definition is small enough that re-solving is cheap relative to
// the edit-save cadence of a human iterating on it.
func newWatchCmd(log logrus.FieldLogger) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "watch <problem.yaml>",
		Short: "Re-solve a problem definition every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			solveOnce := func() {
				def, err := dsl.Load(path)
				if err != nil {
					log.WithError(err).Error("failed to load problem definition")
					return
				}
				var options []solver.Option
				options = append(options, solver.WithLogger(log))
				if seed != 0 {
					options = append(options, solver.WithSeed(seed))
				}
				p, err := dsl.Build(def, options...)
				if err != nil {
					log.WithError(err).Error("failed to build problem")
					return
				}
				sol, err := p.Solve(ctx)
				if err != nil {
					log.WithError(err).Error("solve failed")
					return
				}
				if printErr := printModel(cmd, sol); printErr != nil {
					log.WithError(printErr).Error("failed to print model")
				}
			}

			solveOnce()

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(path) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					solveOnce()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					if err != nil {
						log.WithError(err).Error("watch error")
					}
				}
			}
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic search seed (0 = random)")
	return cmd
}
