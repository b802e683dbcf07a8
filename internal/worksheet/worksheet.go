// Package worksheet generates numbered batches of exercises in parallel.
//
// Exercise i of a worksheet is produced by its own generator seeded with
// Seed+i, so a worksheet is reproducible from its seed no matter how many
// workers build it.
package worksheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/problemgen"
)

// Request describes a worksheet.
type Request struct {
	Topic string

	// Difficulty selects one template key. Zero draws a key per exercise.
	Difficulty int

	Count   int
	Seed    uint64
	Workers int
}

// Item is one numbered exercise.
type Item struct {
	Number int                       `json:"number"`
	Record *problemgen.ExerciseRecord `json:"record"`
}

// Worksheet is a generated batch.
type Worksheet struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Seed      uint64    `json:"seed"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []Item    `json:"items"`
}

// Builder builds worksheets from a registry.
type Builder struct {
	registry *engine.Registry
	config   engine.Config
	log      *zap.Logger
}

// NewBuilder creates a Builder. cfg.Seed is ignored; each request carries
// its own. A nil log discards output.
func NewBuilder(registry *engine.Registry, cfg engine.Config, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{registry: registry, config: cfg, log: log}
}

// Build generates req.Count exercises using at most req.Workers goroutines.
// The first failure cancels the remaining work.
func (b *Builder) Build(ctx context.Context, req Request) (*Worksheet, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("worksheet needs at least one exercise, got %d", req.Count)
	}
	topic, ok := b.registry.Canonical(req.Topic)
	if !ok {
		return nil, &problemgen.ErrResolution{Topic: req.Topic, Kind: problemgen.ResolutionNotFound}
	}
	workers := req.Workers
	if workers < 1 {
		workers = 1
	}

	items := make([]Item, req.Count)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range items {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r, err := b.one(topic, req.Difficulty, req.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("exercise %d: %w", i+1, err)
			}
			items[i] = Item{Number: i + 1, Record: r}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	b.log.Debug("worksheet built",
		zap.String("topic", topic),
		zap.Int("count", req.Count),
		zap.Uint64("seed", req.Seed))
	return &Worksheet{
		ID:        uuid.New().String(),
		Topic:     topic,
		Seed:      req.Seed,
		CreatedAt: time.Now(),
		Items:     items,
	}, nil
}

// one generates a single exercise with a dispatcher of its own.
func (b *Builder) one(topic string, difficulty int, seed uint64) (*problemgen.ExerciseRecord, error) {
	cfg := b.config
	cfg.Seed = seed
	d := engine.NewDispatcher(b.registry, cfg, engine.WithLogger(b.log))
	if difficulty == 0 {
		return d.GenerateAny(topic)
	}
	return d.Generate(topic, difficulty)
}
