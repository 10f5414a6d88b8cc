package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/searchlab/statesearch-go/puzzle"
	"github.com/searchlab/statesearch-go/search"
	"github.com/searchlab/statesearch-go/search/emit"
)

var runFlags struct {
	size          int
	algo          string
	seed          int64
	maxDepth      int
	maxExpansions int
	verbose       bool
	jsonEvents    bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve a single random puzzle instance",
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().IntVar(&runFlags.size, "size", 3, "grid size N (2-4)")
	runCmd.Flags().StringVar(&runFlags.algo, "algo", "astar", "search algorithm: astar or iddfs")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 0, "RNG seed for instance generation (0 = time-based)")
	runCmd.Flags().IntVar(&runFlags.maxDepth, "max-depth", 0, "iddfs depth ceiling (0 = default)")
	runCmd.Flags().IntVar(&runFlags.maxExpansions, "max-expansions", 0, "iddfs cumulative expansion budget (0 = default)")
	runCmd.Flags().BoolVar(&runFlags.verbose, "verbose", false, "emit per-expansion events to stderr")
	runCmd.Flags().BoolVar(&runFlags.jsonEvents, "json-events", false, "emit events as JSONL instead of text")
}

func runOnce(cmd *cobra.Command, _ []string) error {
	var rng *rand.Rand
	if runFlags.seed != 0 {
		rng = rand.New(rand.NewSource(runFlags.seed))
	}

	start, goal, err := puzzle.Random(runFlags.size, rng)
	if err != nil {
		return err
	}
	prob, err := puzzle.New(runFlags.size, goal)
	if err != nil {
		return err
	}

	var emitter emit.Emitter
	if runFlags.verbose {
		emitter = emit.NewLogEmitter(os.Stderr, runFlags.jsonEvents)
	}

	fmt.Println("start state:")
	fmt.Print(puzzle.Render(start))

	var res search.Result[puzzle.Swap]
	switch runFlags.algo {
	case "astar":
		engine := search.NewAStar[puzzle.Grid, puzzle.Swap](prob, emitter, nil)
		res, err = engine.Search(cmd.Context(), "run-astar", start)
	case "iddfs":
		driver := search.NewIterativeDeepening[puzzle.Grid, puzzle.Swap](prob, emitter, nil, search.Options{
			MaxDepth:      runFlags.maxDepth,
			MaxExpansions: runFlags.maxExpansions,
		})
		res, err = driver.Search(cmd.Context(), "run-iddfs", start)
	default:
		return fmt.Errorf("unknown algorithm %q (want astar or iddfs)", runFlags.algo)
	}
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Printf("no solution found (%d states expanded)\n", res.Expanded)
		return nil
	}

	final, err := replay(prob, start, res.Actions)
	if err != nil {
		return err
	}

	fmt.Printf("solved in %d actions, cost %.0f, %d states expanded\n",
		len(res.Actions), res.Cost, res.Expanded)
	for _, action := range res.Actions {
		fmt.Printf("  swap (%d,%d) <-> (%d,%d)\n", action.R1, action.C1, action.R2, action.C2)
	}
	fmt.Println("final state:")
	fmt.Print(puzzle.Render(final))
	return nil
}

// replay applies actions in order, checking each appears among the
// successors of the state preceding it, and that the end state passes
// the goal test.
func replay(prob *puzzle.Puzzle, start puzzle.Grid, actions []puzzle.Swap) (puzzle.Grid, error) {
	state := start
	for i, action := range actions {
		found := false
		for _, succ := range prob.Successors(state) {
			if succ.Action == action {
				state = succ.State
				found = true
				break
			}
		}
		if !found {
			return puzzle.Grid{}, fmt.Errorf("action %d is not a successor of its preceding state", i)
		}
	}
	if !prob.IsGoal(state) {
		return puzzle.Grid{}, fmt.Errorf("replayed end state is not a goal state")
	}
	return state, nil
}
