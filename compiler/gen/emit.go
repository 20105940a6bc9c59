package gen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Emitter consumes a validated graph. Emitters only read the graph and may
// run concurrently with each other.
type Emitter interface {
	// Name identifies the emitter in errors and logs.
	Name() string
	// EmitGraph is called once per Emit.
	EmitGraph(context.Context, *Graph) error
}

// AggregateEmitter is an Emitter that is also called once per aggregate.
// Calls for different aggregates may run concurrently.
type AggregateEmitter interface {
	Emitter
	EmitAggregate(context.Context, *Graph, *Aggregate) error
}

// EmitStats counts the tasks run by Emit.
type EmitStats struct {
	Emitters   int
	Aggregates int
	Tasks      int
}

// emitTask is a single unit of work of Emit.
type emitTask struct {
	emitter Emitter
	agg     *Aggregate // nil for the graph-level call
}

// Emit runs the emitters over the graph with at most Config.Workers tasks
// at a time. The first failure cancels the remaining tasks and is returned
// as an *EmitError.
func (g *Graph) Emit(ctx context.Context, emitters ...Emitter) (*EmitStats, error) {
	var (
		tasks []emitTask
		stats = &EmitStats{Emitters: len(emitters)}
		mu    sync.Mutex
		log   = g.logger()
	)
	for _, e := range emitters {
		tasks = append(tasks, emitTask{emitter: e})
		if _, ok := e.(AggregateEmitter); ok {
			for _, a := range g.Aggregates {
				tasks = append(tasks, emitTask{emitter: e, agg: a})
			}
		}
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())
	for _, t := range tasks {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := t.run(ctx, g); err != nil {
				return err
			}
			mu.Lock()
			stats.Tasks++
			if t.agg != nil {
				stats.Aggregates++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("emit failed", "error", err)
		return stats, err
	}
	log.Debug("emit done", "emitters", stats.Emitters, "tasks", stats.Tasks)
	return stats, nil
}

func (t emitTask) run(ctx context.Context, g *Graph) error {
	var err error
	if t.agg == nil {
		err = t.emitter.EmitGraph(ctx, g)
	} else {
		err = t.emitter.(AggregateEmitter).EmitAggregate(ctx, g, t.agg)
	}
	if err == nil {
		return nil
	}
	e := &EmitError{Emitter: t.emitter.Name(), Cause: err}
	if t.agg != nil {
		e.Aggregate = t.agg.Path()
	}
	return e
}

// SnapshotEmitter writes the graph snapshot to W.
type SnapshotEmitter struct {
	W io.Writer
	// Format is "json" (the default) or "yaml".
	Format string
}

// Name implements Emitter.
func (*SnapshotEmitter) Name() string { return "snapshot" }

// EmitGraph implements Emitter.
func (e *SnapshotEmitter) EmitGraph(_ context.Context, g *Graph) error {
	var (
		b   []byte
		err error
		s   = g.Snapshot()
	)
	switch e.Format {
	case "", "json":
		b, err = s.JSON()
	case "yaml":
		b, err = s.YAML()
	default:
		return fmt.Errorf("unknown snapshot format %q", e.Format)
	}
	if err != nil {
		return err
	}
	if _, err := e.W.Write(b); err != nil {
		return err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		_, err = io.WriteString(e.W, "\n")
	}
	return err
}
