package aoc

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Part solves one half of a day's puzzle.
type Part func(p *Puzzle) (int64, error)

// Config controls a run of a day program.
type Config struct {
	// Root is the directory holding input_data.
	Root    string
	Variant Variant
	// Part limits the run to "A" or "B". Empty runs both.
	Part string
	// Check compares answers against input_data/answers.yaml.
	Check bool

	// Out receives the "Part X:<answer>" lines.
	Out io.Writer
	Log zerolog.Logger
}

// Result is the outcome of one part.
type Result struct {
	Part    string
	Answer  int64
	Elapsed time.Duration
}

// NewLogger returns a human-readable logger writing to w, at debug level
// if debug is set and info otherwise.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ParseFlags builds a Config from command line arguments. With no
// arguments it solves both parts of the real input, with Root found by
// walking up from the working directory to go.mod.
func ParseFlags(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var (
		root    = fs.String("root", "", "directory holding input_data (default: module root)")
		sample  = fs.Bool("sample", false, "solve the sample input")
		variant = fs.String("variant", "", "input variant to solve: input, sample, alt_sample or many_matrix")
		part    = fs.String("part", "", "part to run: a or b (default both)")
		check   = fs.Bool("check", false, "check answers against input_data/answers.yaml")
		debug   = fs.Bool("debug", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Root:    *root,
		Variant: Question,
		Part:    strings.ToUpper(*part),
		Check:   *check,
		Out:     os.Stdout,
		Log:     NewLogger(os.Stderr, *debug),
	}
	if *sample {
		cfg.Variant = Sample
	}
	if *variant != "" {
		v, err := ParseVariant(*variant)
		if err != nil {
			return Config{}, err
		}
		cfg.Variant = v
	}
	switch cfg.Part {
	case "", "A", "B":
	default:
		return Config{}, fmt.Errorf("bad -part %q: want a or b", *part)
	}
	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, err
		}
		if cfg.Root, err = FindRoot(wd); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Solve runs part A and part B of day concurrently and writes each answer
// to cfg.Out as "Part A:<n>" or "Part B:<n>" as soon as it is known, so
// the two lines may come in either order. It returns the results in part
// order, or the first error either part hit.
func Solve(ctx context.Context, cfg Config, day Day, a, b Part) ([]Result, error) {
	var answers Answers
	if cfg.Check {
		var err error
		if answers, err = LoadAnswers(cfg.Root); err != nil {
			return nil, err
		}
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	parts := []struct {
		name string
		fn   Part
	}{{"A", a}, {"B", b}}
	results := make([]*Result, len(parts))

	var mu sync.Mutex // guards out
	eg, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		if part.fn == nil || (cfg.Part != "" && cfg.Part != part.name) {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := cfg.Log.With().Str("day", day.String()).Str("part", part.name).Stringer("variant", cfg.Variant).Logger()
			p := &Puzzle{
				Day:     day,
				Variant: cfg.Variant,
				Inputs:  Inputs{Root: cfg.Root},
				log:     log,
			}
			log.Debug().Msg("starting")
			t0 := time.Now()
			got, err := part.fn(p)
			if err != nil {
				log.Error().Err(err).Msg("failed")
				return fmt.Errorf("%s part %s: %w", day, part.name, err)
			}
			elapsed := time.Since(t0)
			log.Info().Int64("answer", got).Dur("took", elapsed.Round(time.Microsecond)).Msg("solved")

			mu.Lock()
			fmt.Fprintf(out, "Part %s:%d\n", part.name, got)
			mu.Unlock()
			results[i] = &Result{Part: part.name, Answer: got, Elapsed: elapsed}

			if cfg.Check {
				if err := answers.Check(day, cfg.Variant, part.name, got); err != nil {
					log.Error().Err(err).Msg("check failed")
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var res []Result
	for _, r := range results {
		if r != nil {
			res = append(res, *r)
		}
	}
	return res, nil
}

// Run is the main function of a day program. It parses flags, solves the
// day and exits non-zero on any error.
func Run(day Day, a, b Part) {
	cfg, err := ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if _, err := Solve(context.Background(), cfg, day, a, b); err != nil {
		cfg.Log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
