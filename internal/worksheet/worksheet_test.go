package worksheet

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/exgen/internal/engine"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(engine.DefaultRegistry(), engine.DefaultConfig(), zaptest.NewLogger(t))
}

func TestBuild(t *testing.T) {
	ws, err := newBuilder(t).Build(context.Background(), Request{Topic: "001", Count: 12, Seed: 100, Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, "radicals", ws.Topic)
	_, err = uuid.Parse(ws.ID)
	assert.NoError(t, err)
	require.Len(t, ws.Items, 12)
	for i, it := range ws.Items {
		assert.Equal(t, i+1, it.Number)
		require.NotNil(t, it.Record)
		assert.Equal(t, "radical_expression", it.Record.Type)
	}
}

func TestBuild_ReproducibleAcrossWorkerCounts(t *testing.T) {
	b := newBuilder(t)
	one, err := b.Build(context.Background(), Request{Topic: "fractions", Count: 20, Seed: 7, Workers: 1})
	require.NoError(t, err)
	many, err := b.Build(context.Background(), Request{Topic: "fractions", Count: 20, Seed: 7, Workers: 8})
	require.NoError(t, err)

	ignore := cmpopts.IgnoreFields(Worksheet{}, "ID", "CreatedAt")
	if diff := cmp.Diff(one, many, ignore); diff != "" {
		t.Errorf("worksheets differ (-one +many):\n%s", diff)
	}
}

func TestBuild_FixedDifficulty(t *testing.T) {
	ws, err := newBuilder(t).Build(context.Background(), Request{Topic: "equation", Difficulty: 3, Count: 5, Seed: 1, Workers: 2})
	require.NoError(t, err)
	for _, it := range ws.Items {
		assert.Equal(t, 3, it.Record.Difficulty)
	}
}

func TestBuild_Errors(t *testing.T) {
	b := newBuilder(t)

	_, err := b.Build(context.Background(), Request{Topic: "radicals", Count: 0})
	assert.Error(t, err)

	_, err = b.Build(context.Background(), Request{Topic: "geometry", Count: 3})
	var resolution *problemgen.ErrResolution
	require.ErrorAs(t, err, &resolution)
	assert.Equal(t, problemgen.ResolutionNotFound, resolution.Kind)

	_, err = b.Build(context.Background(), Request{Topic: "radicals", Difficulty: 42, Count: 3, Workers: 2})
	var unknown *problemgen.ErrUnknownTemplate
	require.ErrorAs(t, err, &unknown)
}

func TestBuild_Exhausted(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxAttempts = 5
	cfg.TargetRange = sampler.Range{Min: 500, Max: 600}
	b := NewBuilder(engine.DefaultRegistry(), cfg, nil)

	_, err := b.Build(context.Background(), Request{Topic: "radicals", Difficulty: 13, Count: 4, Workers: 2})
	var exhausted *problemgen.ErrSamplingExhausted
	assert.ErrorAs(t, err, &exhausted)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newBuilder(t).Build(ctx, Request{Topic: "arithmetic", Count: 50, Workers: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	ws, err := newBuilder(t).Build(context.Background(), Request{Topic: "arithmetic", Count: 3, Seed: 2, Workers: 1})
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ws, FormatText))
		out := buf.String()
		assert.Contains(t, out, "Answers")
		assert.Contains(t, out, " 1. "+ws.Items[0].Record.Question)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ws, FormatJSON))
		var decoded struct {
			Items []struct {
				Record json.RawMessage `json:"record"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Items, 3)
		for _, it := range decoded.Items {
			assert.NoError(t, problemgen.ValidateJSON(it.Record))
		}
	})

	t.Run("latex", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, ws, FormatLaTeX))
		out := buf.String()
		assert.True(t, strings.HasPrefix(out, `\documentclass{article}`))
		assert.Equal(t, 6, strings.Count(out, `\item`))
	})

	t.Run("json rejects invalid record", func(t *testing.T) {
		broken := *ws.Items[1].Record
		broken.Hints = nil
		bad := &Worksheet{ID: ws.ID, Topic: ws.Topic, Items: []Item{ws.Items[0], {Number: 2, Record: &broken}}}

		var buf bytes.Buffer
		err := Write(&buf, bad, FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 2")
		assert.Zero(t, buf.Len())
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Write(&bytes.Buffer{}, ws, "pdf"))
	})
}
