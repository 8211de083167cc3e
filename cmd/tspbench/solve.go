package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbench/compare"
	"github.com/katalvlaran/tspbench/tsp"
)

const keyAlgo = "algo"

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one solver on a generated instance",
		Long: `
solve runs a single algorithm: backtracking (exact), greedy
(nearest-neighbor) or two-opt (2-opt refinement of the greedy route).
--exact-limit does not apply; backtracking still refuses more than 13 cities.`,
		Args: cobra.NoArgs,
	}
	addRunFlags(cmd.Flags())
	cmd.Flags().String(keyAlgo, tsp.GreedyTwoOpt.String(),
		"Algorithm, one of [backtracking, greedy, two-opt].")
	conf := bindConfig(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		algo, err := tsp.ParseAlgorithm(conf.GetString(keyAlgo))
		if err != nil {
			return err
		}
		env, err := newRunEnv(conf, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer env.close()

		rep, err := compare.Solve(env.cfg, algo, env.opts...)
		if err != nil {
			return err
		}

		return env.finish(cmd.OutOrStdout(), rep)
	}

	return cmd
}
