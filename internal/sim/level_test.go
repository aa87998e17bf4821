package sim

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHouse_Valid(t *testing.T) {
	h := DefaultHouse()
	require.NoError(t, h.Validate())
	assert.Len(t, h.Obstacles(), 33)
	assert.Len(t, h.Items, 5)
}

func TestDefaultHouse_DoorsAreOpen(t *testing.T) {
	h := DefaultHouse()
	obstacles := h.Obstacles()
	for _, door := range h.Doors {
		for _, o := range obstacles {
			assert.False(t, RectsOverlap(door, o), "door %+v still blocked by %+v", door, o)
		}
	}
}

func TestDefaultHouse_ItemsReachable(t *testing.T) {
	h := DefaultHouse()
	obstacles := h.Obstacles()
	for _, it := range h.Items {
		box := R(it.Pos.X, it.Pos.Y, it.Size.X, it.Size.Y)
		for _, o := range obstacles {
			assert.False(t, RectsOverlap(box, o), "%s sits inside a wall", it.Kind)
		}
	}
}

func TestLevel_RoomAt(t *testing.T) {
	h := DefaultHouse()
	assert.Equal(t, "bedroom", h.RoomAt(V(100, 100)))
	assert.Equal(t, "kitchen", h.RoomAt(V(800, 500)))
	assert.Equal(t, "", h.RoomAt(V(1100, 700)))
}

func TestParseLevel_RoundTrip(t *testing.T) {
	data, err := json.Marshal(DefaultHouse())
	require.NoError(t, err)
	l, err := ParseLevel(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultHouse(), l)
}

func TestParseLevel_Errors(t *testing.T) {
	noItems := DefaultHouse()
	noItems.Items = nil

	walledIn := DefaultHouse()
	walledIn.Player.Spawn = V(50, 50)

	outside := DefaultHouse()
	outside.Adversary.Spawn = V(1190, 500)

	noExit := DefaultHouse()
	noExit.Exit = Rect{}

	tests := []struct {
		name  string
		level *Level
		want  string
	}{
		{"no items", noItems, "at least one item"},
		{"spawn in wall", walledIn, "overlaps obstacle"},
		{"spawn outside", outside, "outside the world"},
		{"no exit", noExit, "exit region"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.level)
			require.NoError(t, err)
			_, err = ParseLevel(data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), `level "house"`)
		})
	}

	_, err := ParseLevel([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode level")
}

func TestLoadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.json")
	data, err := json.MarshalIndent(DefaultHouse(), "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	l, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "house", l.Name)

	_, err = LoadLevel(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read level")
}
