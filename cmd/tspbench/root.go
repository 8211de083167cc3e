package main

import (
	"io"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tspbench/compare"
)

// newRootCmd assembles the command tree. Each subcommand owns a viper
// instance bound to its flags and to TSPBENCH_* variables.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tspbench",
		Short: "tspbench: compare TSP strategies on random complete graphs",
		Long: `
tspbench generates a symmetric complete graph and runs an exhaustive
backtracking search, a nearest-neighbor construction, and a 2-opt
refinement of the greedy route, then reports routes, costs, timings
and expansion counts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompareCmd(), newSolveCmd())

	return root
}

// addRunFlags registers the flags shared by compare and solve.
func addRunFlags(fs *flag.FlagSet) {
	d := compare.DefaultConfig()
	fs.Int(compare.KeyCities, d.Cities, "Number of cities in the generated instance.")
	fs.Int(compare.KeyMaxDistance, d.MaxDistance, "Largest edge weight; weights are uniform integers in [1, max].")
	fs.Int64(compare.KeySeed, d.Seed, "Generator seed.")
	fs.Int(compare.KeyExactLimit, d.ExactLimit, "Largest instance the exhaustive search runs on.")
	fs.Bool(compare.KeyBound, d.Bound, "Prune the exhaustive search with a lower bound.")
	fs.Int(compare.KeyMaxPasses, d.MaxPasses, "Cap on 2-opt passes; 0 runs to a local optimum.")
	fs.String(compare.KeyFormat, d.Format, "Report format, one of [text, json, yaml].")
	fs.Bool(compare.KeyMetrics, d.Metrics, "Append solver metrics in Prometheus text format.")
	fs.String(compare.KeyLogLevel, d.LogLevel, "Log level, one of [debug, info, warn, error].")
	fs.String(compare.KeyLogFormat, d.LogFormat, "Log encoding, one of [json, console].")
}

// bindConfig layers flags over TSPBENCH_* variables over defaults.
func bindConfig(cmd *cobra.Command) *viper.Viper {
	conf := compare.NewViper()
	_ = conf.BindPFlags(cmd.Flags())

	return conf
}

// runEnv is what a subcommand needs once its configuration is loaded.
type runEnv struct {
	cfg  compare.Config
	log  *zap.Logger
	rec  *compare.Recorder
	opts []compare.Option
}

func newRunEnv(conf *viper.Viper, stderr io.Writer) (*runEnv, error) {
	cfg, err := compare.LoadConfig(conf)
	if err != nil {
		return nil, err
	}
	log, err := compare.NewLogger(cfg.LogLevel, cfg.LogFormat, zapcore.Lock(zapcore.AddSync(stderr)))
	if err != nil {
		return nil, err
	}

	env := &runEnv{cfg: cfg, log: log, opts: []compare.Option{compare.WithLogger(log)}}
	if cfg.Metrics {
		env.rec = compare.NewRecorder()
		env.opts = append(env.opts, compare.WithRecorder(env.rec))
	}

	return env, nil
}

// finish writes the report, then the metrics when enabled.
func (e *runEnv) finish(out io.Writer, rep compare.Report) error {
	if err := rep.Write(out, e.cfg.Format); err != nil {
		return err
	}
	if e.rec != nil {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}

		return e.rec.WriteText(out)
	}

	return nil
}

func (e *runEnv) close() { _ = e.log.Sync() }
