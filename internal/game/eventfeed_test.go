package game

import (
	"fmt"
	"testing"
)

func TestEventFeed_RecentOrder(t *testing.T) {
	f := NewEventFeed()
	f.Add(1, FeedInfo, "a")
	f.Add(2, FeedItem, "b")
	got := f.Recent()
	if len(got) != 2 || got[0].Message != "a" || got[1].Message != "b" {
		t.Fatalf("unexpected feed order: %+v", got)
	}
}

func TestEventFeed_WrapsAtCapacity(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+3; i++ {
		f.Add(i, FeedInfo, fmt.Sprintf("m%d", i))
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 3 {
		t.Fatalf("expected oldest tick 3 after wrap, got %d", got[0].Tick)
	}
	if last := got[len(got)-1]; last.Message != fmt.Sprintf("m%d", feedMaxEntries+2) {
		t.Fatalf("unexpected newest entry %+v", last)
	}
}
