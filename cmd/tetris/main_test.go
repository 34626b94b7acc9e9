package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in         string
		stage, sub int
		ok         bool
	}{
		{"1-1", 0, 0, true},
		{"20-5", 19, 4, true},
		{"3-2", 2, 1, true},
		{"0-1", 0, 0, false},
		{"21-1", 0, 0, false},
		{"1-6", 0, 0, false},
		{"3", 0, 0, false},
		{"3-2x", 0, 0, false},
		{"a-b", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			stage, sub, err := parseLevel(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, config.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stage, stage)
			assert.Equal(t, tt.sub, sub)
		})
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() Summary {
		g := tetris.New(tetris.WithStartStage(0, 2))
		g.Reset(core.RuntimeConfig{Seed: 77})
		return simulate(g, newBot(77), 5000)
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Equal(t, 5000, a.Ticks)
	assert.Positive(t, a.Locks)
}

func TestBotConfirmsFromMenu(t *testing.T) {
	g := tetris.New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	simulate(g, newBot(1), 2)

	assert.NotEqual(t, tetris.PhaseMenu, g.Phase().Kind())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, Summary{RunID: "abc", Seed: 3, Ticks: 10, ClearCounts: [5]int{0, 2, 0, 0, 1}, FinalStage: "1-1"})

	out := buf.String()
	assert.Contains(t, out, "run        abc")
	assert.Contains(t, out, "TETЯIS!!!! 1")
	assert.Contains(t, out, "final      1-1 (menu)")
}

func TestPrintFrame(t *testing.T) {
	g := tetris.New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	var buf bytes.Buffer
	printFrame(&buf, g)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	_, h := tui.NewRenderer(1).Size()
	assert.Len(t, lines, h)
	assert.Contains(t, buf.String(), "TETЯIS")
	for i, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line, "line %d", i)
	}
}
