package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedMaxEntries = 8
	feedPanelWidth = 420
	feedLineHeight = 16
)

// FeedKind picks the marker colour of a feed line.
type FeedKind int

const (
	FeedInfo FeedKind = iota
	FeedItem
	FeedAdversary
	FeedDanger
)

var feedColors = [...]color.RGBA{
	FeedInfo:      {R: 180, G: 180, B: 200, A: 255},
	FeedItem:      {R: 90, G: 210, B: 90, A: 255},
	FeedAdversary: {R: 210, G: 70, B: 210, A: 255},
	FeedDanger:    {R: 230, G: 50, B: 50, A: 255},
}

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Kind    FeedKind
	Message string
}

// EventFeed is a ring buffer of recent game events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(tick int, kind FeedKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed with its newest line at bottom, ending at baseY.
func (f *EventFeed) Draw(screen *ebiten.Image, x, baseY int) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	h := len(entries)*feedLineHeight + 8
	top := baseY - h
	vector.FillRect(screen, float32(x), float32(top), feedPanelWidth, float32(h), color.RGBA{R: 8, G: 8, B: 16, A: 170}, false)

	y := top + 4
	for i, e := range entries {
		// The newest line gets a highlight row.
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(x+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 40, G: 30, B: 50, A: 160}, false)
		}
		vector.FillRect(screen, float32(x+5), float32(y+5), 4, 6, feedColors[e.Kind], false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), x+14, y)
		y += feedLineHeight
	}
}
