package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/source"
	"github.com/osse101/FactoryModExplorer_Go/internal/validation"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	maxParallel = 4

	defaultTimeout = 30 * time.Second
)

type options struct {
	strict  bool
	asJSON  bool
	timeout time.Duration
	verbose bool
}

// report is the outcome for one location
type report struct {
	Location    string            `json:"location"`
	Digest      string            `json:"digest,omitempty"`
	Stats       *factorymod.Stats `json:"stats,omitempty"`
	ParseErrors []parseErrorLine  `json:"parse_errors,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type parseErrorLine struct {
	Kind    string `json:"kind"`
	Entity  string `json:"entity,omitempty"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, locations, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger.InitLoggerWithWriter(logger.CLIConfig("fmcheck", opts.verbose), stderr)

	reports := checkAll(ctx, locations, opts)

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fmt.Fprintf(stderr, "fmcheck: %v\n", err)
			return exitFailed
		}
	} else {
		for _, r := range reports {
			printReport(stdout, r)
		}
	}

	for _, r := range reports {
		if r.Error != "" || (opts.strict && len(r.ParseErrors) > 0) {
			return exitFailed
		}
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("fmcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.strict, "strict", false, "exit 1 when any declaration was skipped")
	fs.BoolVar(&opts.asJSON, "json", false, "print reports as JSON")
	fs.DurationVar(&opts.timeout, "timeout", defaultTimeout, "fetch timeout per location")
	fs.BoolVar(&opts.verbose, "v", false, "log debug output to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: fmcheck [flags] <file-or-url>...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return opts, nil, errors.New("no locations given")
	}
	if opts.timeout <= 0 {
		fmt.Fprintln(stderr, "fmcheck: -timeout must be positive")
		return opts, nil, errors.New("invalid timeout")
	}
	return opts, fs.Args(), nil
}

// checkAll loads every location concurrently. Reports keep argument order.
func checkAll(ctx context.Context, locations []string, opts options) []report {
	fetcher := source.NewFetcher(source.Options{
		Timeout:   opts.timeout,
		CacheSize: len(locations),
		CacheTTL:  opts.timeout,
	})
	loader := factorymod.NewLoader(validation.NewSchemaValidator())

	reports := make([]report, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, location := range locations {
		g.Go(func() error {
			reports[i] = check(gctx, fetcher, loader, location)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}

func check(ctx context.Context, fetcher source.Fetcher, loader factorymod.Loader, location string) report {
	r := report{Location: location}

	doc, err := fetcher.Fetch(ctx, location)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Digest = doc.Digest

	model, err := loader.Load(ctx, doc.Body)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	stats := model.Stats()
	r.Stats = &stats
	for _, pe := range model.ParseErrors {
		r.ParseErrors = append(r.ParseErrors, parseErrorLine{
			Kind:    pe.Kind(),
			Entity:  pe.Entity,
			Message: pe.Error(),
			Line:    pe.Line,
			Column:  pe.Column,
		})
	}
	return r
}

func printReport(w io.Writer, r report) {
	if r.Error != "" {
		fmt.Fprintf(w, "%s: FAILED: %s\n", r.Location, r.Error)
		return
	}
	fmt.Fprintf(w, "%s: %d recipes, %d factories, %d items (%d materials), %d parse errors\n",
		r.Location, r.Stats.Recipes, r.Stats.Factories, r.Stats.Items, r.Stats.Materials, r.Stats.ParseErrors)
	for _, pe := range r.ParseErrors {
		entity := pe.Entity
		if entity == "" {
			entity = "-"
		}
		fmt.Fprintf(w, "  %d:%d\t%s\t%s\t%s\n", pe.Line, pe.Column, pe.Kind, entity, pe.Message)
	}
}
