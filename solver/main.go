// Command solver runs the greedy and random constructors on an MKP instance and
// improves both with the 1-exchange local search.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"

	"git.solver4all.com/azaryc2s/mkp"
	"git.solver4all.com/azaryc2s/mkp/heuristic"
	"git.solver4all.com/azaryc2s/mkp/logging"
)

var flags = []cli.Flag{
	cli.StringFlag{Name: "input, i", Value: "input.txt", Usage: "instance `FILE`, .json documents or the text format"},
	cli.IntFlag{Name: "random, r", Value: 10, Usage: "number of random permutations"},
	cli.IntFlag{Name: "improve, k", Value: 1, Usage: "maximum number of improvement passes"},
	cli.IntFlag{Name: "workers, w", Usage: "parallel workers, 0 uses GOMAXPROCS"},
	cli.Int64Flag{Name: "seed, s", Usage: "seed of the random constructor, 0 is time based"},
	cli.StringFlag{Name: "output, o", Usage: "write the instance with its solutions as JSON to `FILE`"},
	cli.StringFlag{Name: "format, f", Value: FormatText, Usage: "report format: text, json or yaml"},
	cli.StringFlag{Name: "metrics-file", Usage: "write heuristic metrics in the Prometheus text format to `FILE`"},
	cli.StringFlag{Name: "config, c", Usage: "YAML config `FILE`"},
	cli.StringFlag{Name: "log-level", Value: "info", Usage: "info, debug or trace"},
	cli.BoolFlag{Name: "system", Usage: "stamp the solutions with system information"},
}

func main() {
	app := cli.NewApp()
	app.Name = "mkp"
	app.Usage = "heuristics for the multidimensional knapsack problem"
	app.Version = "0.2.0"
	app.Flags = flags
	app.Action = action
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"), explicitFlags(c))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger, err := logging.NewLogger(cfg.LogLevel, cfg.Format == FormatText)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	report, err := run(cfg, logger)
	if err != nil {
		logger.V(logging.DEBUG).Info("Run failed", "stack", errors.ErrorStack(err))
		if errors.Is(err, mkp.ErrMalformedInstance) {
			return cli.NewExitError(fmt.Sprintf("MalformedInstance: %v", err), 1)
		}
		return cli.NewExitError(err.Error(), 1)
	}
	return errors.Trace(report.Write(os.Stdout, cfg.Format))
}

// explicitFlags collects the flags given on the command line so they override the
// config file and the environment.
func explicitFlags(c *cli.Context) map[string]interface{} {
	set := map[string]interface{}{}
	for _, name := range []string{"input", "output", "format", "metrics-file", "log-level"} {
		if c.IsSet(name) {
			set[name] = c.String(name)
		}
	}
	for _, name := range []string{"random", "improve", "workers"} {
		if c.IsSet(name) {
			set[name] = c.Int(name)
		}
	}
	if c.IsSet("seed") {
		set["seed"] = c.Int64("seed")
	}
	if c.IsSet("system") {
		set["system"] = c.Bool("system")
	}
	return set
}

func run(cfg *Config, logger logr.Logger) (*Report, error) {
	inst, err := mkp.LoadInstance(cfg.Input)
	if err != nil {
		return nil, errors.Trace(err)
	}
	logger.Info("Instance loaded", "name", inst.Name, "n", inst.N, "m", inst.M)

	reg := prometheus.NewRegistry()
	opts := []heuristic.Option{
		heuristic.WithWorkers(cfg.Workers),
		heuristic.WithLogger(logger.WithName("heuristic")),
		heuristic.WithMetrics(heuristic.NewMetrics(reg)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, heuristic.WithSeed(cfg.Seed))
	}
	s := heuristic.New(inst, opts...)
	logger.V(logging.DEBUG).Info("Solver ready", "workers", s.Workers(), "seed", s.Seed(),
		"random", cfg.Random, "improve", cfg.Improve)

	report := &Report{Instance: inst.Name}
	greedy := s.Greedy()
	report.add("Greedy", greedy)
	if cfg.Improve > 0 {
		report.add("Greedy improved", s.ImproveK(greedy, cfg.Improve))
	}
	random := s.Random(cfg.Random)
	report.add("Random", random)
	if cfg.Improve > 0 {
		report.add("Random improved", s.ImproveK(random, cfg.Improve))
	}

	if cfg.System {
		info := mkp.CollectSysInfo()
		for _, entry := range report.Results {
			entry.Solution.System = &info
		}
	}
	for _, entry := range report.Results {
		if err := mkp.Verify(inst, entry.Solution); err != nil {
			return nil, errors.Annotatef(err, "%s produced an invalid solution", entry.Label)
		}
	}

	if cfg.Output != "" {
		inst.Solutions = append(inst.Solutions, report.Solutions()...)
		if err := mkp.WriteJSON(cfg.Output, inst); err != nil {
			return nil, errors.Trace(err)
		}
		logger.Info("Solutions saved", "file", cfg.Output)
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return nil, errors.Annotatef(err, "writing metrics to %s", cfg.MetricsFile)
		}
		logger.V(logging.DEBUG).Info("Metrics saved", "file", cfg.MetricsFile)
	}
	return report, nil
}
