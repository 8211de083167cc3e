package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbench/compare"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all three solvers on one instance and report",
		Long: `
compare generates one instance and runs backtracking (when the instance is
within --exact-limit), nearest-neighbor, then 2-opt on the greedy route.`,
		Args: cobra.NoArgs,
	}
	addRunFlags(cmd.Flags())
	conf := bindConfig(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		env, err := newRunEnv(conf, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer env.close()

		rep, err := compare.Run(env.cfg, env.opts...)
		if err != nil {
			return err
		}

		return env.finish(cmd.OutOrStdout(), rep)
	}

	return cmd
}
