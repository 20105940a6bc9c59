// inspect builds the aggregate graph of a declaration file and prints its
// snapshot, or the diagnostics when the declarations are invalid.
// Run: go run ./compiler/gen/cmd/inspect compiler/load/testdata/shop.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/syssam/aggregen/compiler/gen"
	"github.com/syssam/aggregen/compiler/load"
)

func main() {
	var (
		format      = flag.String("format", "json", "snapshot format: json or yaml")
		verbose     = flag.Bool("v", false, "log build progress")
		fingerprint = flag.Bool("fingerprint", false, "print only the snapshot fingerprint")
		seed        = flag.Uint64("seed", 1, "seed of dummy values")
		dummies     = flag.Int("dummies", 0, "print this many dummy rows per aggregate")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: inspect [flags] <declarations.yaml|declarations.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	decls, err := load.ParseFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load declarations: %v\n", err)
		os.Exit(1)
	}

	config, err := gen.NewConfig(
		gen.WithLogger(logger),
		gen.WithSeed(*seed),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	graph, err := gen.NewGraph(config, decls...)
	if err != nil {
		var diags gen.Diagnostics
		if errors.As(err, &diags) {
			for _, d := range diags {
				fmt.Fprintf(os.Stderr, "%s: %s\n", d.Rule, d.Error())
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "failed to create graph: %v\n", err)
		os.Exit(1)
	}

	if *fingerprint {
		sum, err := graph.Snapshot().Fingerprint()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fingerprint failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(sum)
		return
	}

	emitters := []gen.Emitter{&gen.SnapshotEmitter{W: os.Stdout, Format: *format}}
	if *dummies > 0 {
		emitters = append(emitters, &dummyEmitter{rows: *dummies})
	}
	if _, err := graph.Emit(context.Background(), emitters...); err != nil {
		fmt.Fprintf(os.Stderr, "emit failed: %v\n", err)
		os.Exit(1)
	}
}

// dummyEmitter prints dummy rows of every data-model aggregate to stderr.
// Aggregates are visited concurrently, so their rows may interleave.
type dummyEmitter struct {
	rows int
}

func (*dummyEmitter) Name() string { return "dummy" }

func (*dummyEmitter) EmitGraph(context.Context, *gen.Graph) error { return nil }

func (e *dummyEmitter) EmitAggregate(_ context.Context, _ *gen.Graph, a *gen.Aggregate) error {
	if !a.Model.Persistent() {
		return nil
	}
	for i := range e.rows {
		fmt.Fprintf(os.Stderr, "%s[%d] %v\n", a.Path(), i, a.DummyValues(i, nil))
	}
	return nil
}
