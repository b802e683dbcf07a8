package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/exgen/internal/config"
	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/session"
)

func setup(t *testing.T) {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.Seed = 42
	logger = zaptest.NewLogger(t)
}

// fixedSource always serves the same exercise.
type fixedSource struct{ r *problemgen.ExerciseRecord }

func (f fixedSource) Generate(string, int) (*problemgen.ExerciseRecord, error) { return f.r, nil }
func (f fixedSource) GenerateAny(string) (*problemgen.ExerciseRecord, error)   { return f.r, nil }

func TestFormatKeys(t *testing.T) {
	tests := []struct {
		keys []int
		want string
	}{
		{nil, "none"},
		{[]int{4}, "4"},
		{[]int{1, 2, 3}, "1-3"},
		{[]int{1, 3, 7}, "1,3,7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatKeys(tt.keys))
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}

func TestRunSeed(t *testing.T) {
	setup(t)
	assert.Equal(t, uint64(42), runSeed())
	cfg.Seed = 0
	assert.NotZero(t, runSeed())
}

func TestTopicLines(t *testing.T) {
	setup(t)
	d, reg, err := newDispatcher(1)
	require.NoError(t, err)

	lines := topicLines(d, reg)
	require.Len(t, lines, len(reg.Topics()))
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "radicals")
	assert.Contains(t, joined, "1-13")
	assert.Contains(t, joined, "aka 001")
}

func TestHomeTopics_RespectsConfig(t *testing.T) {
	setup(t)
	cfg.Topics = []string{"002", "equation"}
	d, reg, err := newDispatcher(1)
	require.NoError(t, err)

	topics := homeTopics(d, reg)
	require.Len(t, topics, 2)
	assert.Equal(t, "equation", topics[0].Name)
	assert.Equal(t, []int{1, 2, 3}, topics[0].Keys)
	assert.Equal(t, "fractions", topics[1].Name)
	assert.Equal(t, []string{"002"}, topics[1].Aliases)
}

func TestRenderCard(t *testing.T) {
	setup(t)
	d, _, err := newDispatcher(5)
	require.NoError(t, err)
	r, err := d.Generate("radicals", 3)
	require.NoError(t, err)

	card := renderCard(r)
	assert.Contains(t, card, r.Question)
	assert.Contains(t, card, r.Solution)
	assert.Contains(t, card, "Final answer: "+r.Solution)
}

func TestQuiz(t *testing.T) {
	r := &problemgen.ExerciseRecord{
		Type:       "arithmetic",
		Difficulty: 1,
		Question:   "56 ÷ 8",
		Solution:   "7",
		Hints:      []string{"Break numbers into smaller steps", "Final answer: 7"},
	}
	state := session.NewSessionState("id", "arithmetic", 1, 3, 0)

	var out bytes.Buffer
	in := strings.NewReader("?\n7\n6\n\n")
	require.NoError(t, quiz(state, fixedSource{r}, in, &out))

	text := out.String()
	assert.Contains(t, text, "Hint 1: Break numbers into smaller steps")
	assert.Contains(t, text, "✓ Correct!")
	assert.Contains(t, text, "✗ Wrong.")
	assert.Contains(t, text, "(skipped) Answer: 7")
	assert.Contains(t, text, "Summary: 1/2 correct")
}

func TestQuiz_InputClosed(t *testing.T) {
	r := &problemgen.ExerciseRecord{Question: "3 - 9", Solution: "-6", Hints: []string{"Final answer: -6"}}
	state := session.NewSessionState("id", "arithmetic", 0, 5, 0)

	var out bytes.Buffer
	require.NoError(t, quiz(state, fixedSource{r}, strings.NewReader("-6\n"), &out))
	assert.Contains(t, out.String(), "(input closed)")
	assert.Contains(t, out.String(), "Summary: 1/1 correct")
}

func TestWriteJSON(t *testing.T) {
	setup(t)
	d, _, err := newDispatcher(3)
	require.NoError(t, err)
	a, err := d.Generate("fractions", 1)
	require.NoError(t, err)
	b, err := d.Generate("fractions", 2)
	require.NoError(t, err)

	var one bytes.Buffer
	require.NoError(t, writeJSON(&one, []*problemgen.ExerciseRecord{a}))
	var obj problemgen.ExerciseRecord
	require.NoError(t, json.Unmarshal(one.Bytes(), &obj))
	assert.Equal(t, a.Solution, obj.Solution)

	var many bytes.Buffer
	require.NoError(t, writeJSON(&many, []*problemgen.ExerciseRecord{a, b}))
	var arr []problemgen.ExerciseRecord
	require.NoError(t, json.Unmarshal(many.Bytes(), &arr))
	assert.Len(t, arr, 2)
}

func TestWriteJSON_RejectsInvalidRecord(t *testing.T) {
	broken := &problemgen.ExerciseRecord{Type: "arithmetic", Difficulty: 1, Question: "2 + 2", Solution: "4"}

	var out bytes.Buffer
	err := writeJSON(&out, []*problemgen.ExerciseRecord{broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Zero(t, out.Len())
}

func TestRunGenerate_RejectsBadFlags(t *testing.T) {
	setup(t)
	tests := []struct {
		flag, value, want string
	}{
		{"retries", "-1", "retries must not be negative"},
		{"count", "0", "count must be at least 1"},
		{"format", "xml", "invalid format"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := generateCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			t.Cleanup(func() {
				require.NoError(t, f.Value.Set(f.DefValue))
			})
			require.NoError(t, f.Value.Set(tt.value))

			err := runGenerate(generateCmd, []string{"arithmetic"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteConfig(t *testing.T) {
	setup(t)
	cfg.Topics = []string{"equation"}
	path := filepath.Join(t.TempDir(), "conf", "exgen.yaml")

	require.NoError(t, writeConfig(path, false))
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), loaded.Seed)
	assert.Equal(t, []string{"equation"}, loaded.Topics)

	err = writeConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg.Seed = 7
	require.NoError(t, writeConfig(path, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seed: 7")
}
