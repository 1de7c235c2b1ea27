// Command lakepath builds the shortest-path policy for a FrozenLake board,
// evaluates it, and prints the board with the policy's fitness.
//
//	lakepath -map 8x8 -gamma 0.95 -method iterative -slip 0.2 -html v.html -db runs.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lakepath/bellman"
	"github.com/katalvlaran/lakepath/fitness"
	"github.com/katalvlaran/lakepath/lake"
	"github.com/katalvlaran/lakepath/render"
	"github.com/katalvlaran/lakepath/runstore"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	mapSpec  string
	gamma    float64
	method   string
	slip     float64
	eps      float64
	maxIters int
	html     string
	db       string
	history  int
	color    bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("lakepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.mapSpec, "map", "4x4", `board: 4x4, 8x8, or rows separated by "/" (e.g. SFF/FHF/FFG)`)
	fs.Float64Var(&c.gamma, "gamma", 0.9, "discount factor in (0, 1]")
	fs.StringVar(&c.method, "method", string(bellman.MethodExact), "evaluation method: exact or iterative")
	fs.Float64Var(&c.slip, "slip", 0, "probability of slipping to a perpendicular direction")
	fs.Float64Var(&c.eps, "eps", bellman.DefaultEpsilon, "iterative tolerance")
	fs.IntVar(&c.maxIters, "max-iters", bellman.DefaultMaxIters, "iterative backup cap")
	fs.StringVar(&c.html, "html", envOr("LAKEPATH_HTML", ""), "write a value heatmap page to this path")
	fs.StringVar(&c.db, "db", envOr("LAKEPATH_DB", ""), "record the run in this SQLite database")
	fs.IntVar(&c.history, "history", 0, "list the N most recent runs from -db and exit")
	fs.BoolVar(&c.color, "color", true, "colorize the board")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return c, nil
}

// parseMap resolves a named board or "/"-separated rows.
func parseMap(spec string) []string {
	switch strings.ToLower(spec) {
	case "4x4":
		return lake.Map4x4
	case "8x8":
		return lake.Map8x8
	default:
		return strings.Split(spec, "/")
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx := context.Background()

	if c.history > 0 {
		return printHistory(ctx, c, stdout)
	}

	l, err := lake.Parse(parseMap(c.mapSpec), lake.WithSlip(c.slip))
	if err != nil {
		return err
	}
	res, err := fitness.Run(l, c.gamma,
		fitness.WithMethod(bellman.Method(c.method)),
		fitness.WithEpsilon(c.eps),
		fitness.WithMaxIters(c.maxIters),
		fitness.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err = render.NewPrinter(c.color).Board(stdout, l, res.Policy, res.V, res.Index); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nfitness f = v(s0) = %.6f\n", res.Fitness)

	if c.html != "" {
		if err = writeHeatmap(c.html, l, res); err != nil {
			return err
		}
		logger.Info("wrote heatmap", "path", c.html)
	}

	if c.db != "" {
		id, err := saveRun(ctx, c, l, res)
		if err != nil {
			return err
		}
		logger.Info("recorded run", "id", id, "db", c.db)
	}

	return nil
}

func writeHeatmap(path string, l *lake.Lake, res *fitness.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	title := fmt.Sprintf("v under shortest-path policy (%s, f = %.4f)", res.Method, res.Fitness)
	if err = render.ValueHeatmap(f, l, res.V, res.Index, title); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func saveRun(ctx context.Context, c config, l *lake.Lake, res *fitness.Result) (string, error) {
	store, err := runstore.Open(c.db)
	if err != nil {
		return "", err
	}
	defer store.Close()

	rec, err := store.Save(ctx, runstore.Record{
		Map:        strings.Join(l.Grid(), "/"),
		Slip:       l.Slip(),
		Gamma:      c.gamma,
		Method:     string(res.Method),
		Fitness:    res.Fitness,
		Converged:  res.Converged,
		Iterations: res.Iterations,
		Policy:     render.PolicyText(l, res.Policy),
		Values:     res.V,
	})
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}

func printHistory(ctx context.Context, c config, stdout io.Writer) error {
	if c.db == "" {
		return errors.New("-history requires -db or LAKEPATH_DB")
	}
	store, err := runstore.Open(c.db)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(ctx, c.history)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s  %s  %-9s γ=%.3f slip=%.2f f=%.6f  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID, r.Method, r.Gamma, r.Slip, r.Fitness, r.Map)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
