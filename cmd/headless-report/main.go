package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Garsondee/grannys-house/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // pink
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal
	escapedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green
	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red
	timeoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Outcomes of one run.
const (
	outcomeEscaped = "escaped"
	outcomeCaught  = "caught"
	outcomeExpired = "time_expired"
	outcomeTimeout = "timeout" // tick budget ran out first
)

type runStats struct {
	runIndex int
	seed     int64
	runID    string

	outcome  string
	ticks    int
	captures int
	items    int
	health   int
	clock    string

	stateTicks     [3]int // indexed by sim.AdversaryState
	stateChanges   int
	firstChaseTick int
	routeRestarts  int
}

type runOptions struct {
	ticks          int
	dt             float64
	adversaryWalls bool
	axisSliding    bool
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var opts runOptions
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&opts.ticks, "ticks", 36000, "tick budget per game")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per tick")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&opts.adversaryWalls, "adversary-walls", false, "adversary collides with walls")
	flag.BoolVar(&opts.axisSliding, "axis-sliding", false, "player slides along walls")
	flag.BoolVar(&verbose, "verbose", false, "print every run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if opts.ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if opts.dt <= 0 {
		fmt.Println("error: -dt must be > 0")
		return
	}

	fmt.Println(titleStyle.Render("=== Granny's House: Headless Report ==="))
	fmt.Println(headerStyle.Render(fmt.Sprintf("runs=%d ticks=%d dt=%.4f seed_base=%d seed_step=%d adversary_walls=%t axis_sliding=%t",
		runs, opts.ticks, opts.dt, seedBase, seedStep, opts.adversaryWalls, opts.axisSliding)))
	fmt.Println()

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, log := runGame(i+1, seed, opts)
		all = append(all, rs)
		printRun(rs)
		if verbose {
			fmt.Print(log.Format())
		}
	}

	fmt.Println(panelStyle.Render(aggregateReport(all)))
}

// runGame plays one game of the default house with a route-following bot.
// A capture sends the bot back to the start of its route.
func runGame(runIndex int, seed int64, o runOptions) (runStats, *sim.SimLog) {
	simOpts := []sim.SimOption{sim.WithHouse(), sim.WithSeed(seed)}
	if o.adversaryWalls {
		simOpts = append(simOpts, sim.WithAdversaryWalls())
	}
	if o.axisSliding {
		simOpts = append(simOpts, sim.WithAxisSliding())
	}
	ts := sim.NewTestSim(simOpts...)
	w := ts.World
	bot := sim.NewRouteBot(sim.HouseRoute(), w.Level().World, w.Player.Size)

	rs := runStats{runIndex: runIndex, seed: seed, runID: uuid.NewString()}
	for rs.ticks < o.ticks && !w.Terminal() {
		ev := ts.Step(o.dt, sim.Input{Intent: bot.Intent(w.Player.Pos)})
		rs.ticks++
		rs.stateTicks[w.Adversary.State]++
		if ev.Captured {
			rs.captures++
			if !w.Terminal() {
				bot.Restart()
				rs.routeRestarts++
			}
		}
	}

	rs.outcome = outcomeOf(w)
	rs.items = w.CollectedCount()
	rs.health = w.Player.Health
	rs.clock = w.Clock.String()
	rs.stateChanges = ts.SimLog.Count("state", "change")
	rs.firstChaseTick = ts.SimLog.FirstTick("state", "change", "→ chase")
	return rs, ts.SimLog
}

func outcomeOf(w *sim.World) string {
	switch {
	case w.GameWon:
		return outcomeEscaped
	case w.GameOver && w.Loss == sim.LossTimeExpired:
		return outcomeExpired
	case w.GameOver:
		return outcomeCaught
	default:
		return outcomeTimeout
	}
}

func outcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case outcomeEscaped:
		return escapedStyle
	case outcomeTimeout:
		return timeoutStyle
	default:
		return lostStyle
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d run_id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	fmt.Printf("outcome: %s after %d ticks (%s)\n", outcomeStyle(rs.outcome).Render(rs.outcome), rs.ticks, rs.clock)
	fmt.Printf("player: health=%d items=%d captures=%d route_restarts=%d\n", rs.health, rs.items, rs.captures, rs.routeRestarts)
	fmt.Printf("adversary: %s state_changes=%d first_chase=%s\n", stateShares(rs.stateTicks), rs.stateChanges, tickString(rs.firstChaseTick))
	fmt.Println()
}

// stateShares renders the fraction of ticks spent in each adversary state.
func stateShares(ticks [3]int) string {
	total := 0
	for _, n := range ticks {
		total += n
	}
	parts := make([]string, 0, len(ticks))
	for s, n := range ticks {
		parts = append(parts, fmt.Sprintf("%s=%.0f%%", sim.AdversaryState(s), 100*avg(n, total)))
	}
	return strings.Join(parts, " ")
}

func aggregateReport(all []runStats) string {
	outcomes := map[string]int{}
	var captures, items, ticks int
	var chaseTicks []int
	var stateTicks [3]int
	for _, rs := range all {
		outcomes[rs.outcome]++
		captures += rs.captures
		items += rs.items
		ticks += rs.ticks
		if rs.firstChaseTick >= 0 {
			chaseTicks = append(chaseTicks, rs.firstChaseTick)
		}
		for s, n := range rs.stateTicks {
			stateTicks[s] += n
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Aggregate") + "\n")
	fmt.Fprintf(&sb, "runs=%d outcomes: %s\n", len(all), joinCounts(outcomes))
	fmt.Fprintf(&sb, "avg_per_run: captures=%.1f items=%.1f ticks=%.1f\n",
		avg(captures, len(all)), avg(items, len(all)), avg(ticks, len(all)))
	fmt.Fprintf(&sb, "adversary_time: %s\n", stateShares(stateTicks))
	fmt.Fprintf(&sb, "first_chase_avg_tick=%s (seen in %d/%d runs)", avgTickString(chaseTicks), len(chaseTicks), len(all))
	return sb.String()
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func tickString(t int) string {
	if t < 0 {
		return "never"
	}
	return fmt.Sprintf("%d", t)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
