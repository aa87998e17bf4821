package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimLog_QueryHelpers(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(3, "adversary", "state", "change", "patrol → chase", 120)
	sl.AddVerbose(4, "player", "move", "position", "(1.0,2.0)", 0)
	sl.Add(9, "player", "encounter", "captured", "health 75", 75)
	sl.Add(12, "adversary", "state", "change", "chase → search", 300)

	assert.Len(t, sl.Entries(), 3, "verbose entries dropped")
	assert.Equal(t, 2, sl.Count("state", "change"))
	assert.Len(t, sl.FilterActor("player"), 1)
	assert.Len(t, sl.Filter("", "change"), 2)

	last, ok := sl.LastOf("state", "change")
	assert.True(t, ok)
	assert.Equal(t, 12, last.Tick)
	_, ok = sl.LastOf("outcome", "won")
	assert.False(t, ok)

	assert.Equal(t, 3, sl.FirstTick("state", "change", "→ chase"))
	assert.Equal(t, 12, sl.FirstTick("state", "change", "search"))
	assert.Equal(t, -1, sl.FirstTick("state", "change", "patrol → search"))

	out := sl.Format()
	assert.True(t, strings.Contains(out, "[T=0009] player"), out)
}

func TestSimLog_Verbose(t *testing.T) {
	sl := NewSimLog(true)
	sl.AddVerbose(1, "player", "move", "position", "(0,0)", 0)
	assert.Equal(t, 1, sl.Count("move", "position"))
}

func TestScriptedRand_Cycles(t *testing.T) {
	r := &ScriptedRand{Values: []float64{0.1, 0.9}}
	got := []float64{r.Float64(), r.Float64(), r.Float64()}
	assert.Equal(t, []float64{0.1, 0.9, 0.1}, got)
	assert.Equal(t, 3, r.Calls())
	assert.Equal(t, 0.0, (&ScriptedRand{}).Float64())
}
