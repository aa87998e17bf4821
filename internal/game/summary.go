package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/grannys-house/internal/sim"
)

// StatusSummary is the one-line state of the current run, for pasting into
// bug reports.
func StatusSummary(runID string, s sim.Snapshot, totalItems int) string {
	status := "playing"
	switch {
	case s.GameWon:
		status = "escaped"
	case s.GameOver:
		status = "lost (" + s.Loss.String() + ")"
	}
	inv := "none"
	if len(s.Inventory) > 0 {
		inv = strings.Join(s.Inventory, ", ")
	}
	return fmt.Sprintf("run %s | tick %d | %s | health %d | items %d/%d (%s) | granny %s at (%.0f,%.0f) | %s",
		runID, s.Tick, s.Clock, s.Health, len(s.Inventory), totalItems, inv,
		s.State, s.Adversary.Pos.X, s.Adversary.Pos.Y, status)
}

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}
